package sqlq

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// render builds an SQL statement of the current kind.
func (q *Stmt) render() (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var err error
	switch q.kind {
	case KindSelect:
		q.writeSelect(buf)
	case KindInsert:
		err = q.writeInsert(buf)
	case KindUpdate:
		err = q.writeUpdate(buf)
	case KindDelete:
		q.writeDelete(buf)
	default:
		err = ErrUnsupportedKind.while(`building a statement`).because(
			fmt.Errorf(`unsupported query kind %d`, int(q.kind)))
	}
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (q *Stmt) writeSelect(buf *bytebufferpool.ByteBuffer) {
	buf.WriteString("SELECT ")
	if q.allCols {
		buf.WriteByte('*')
	} else {
		writeList(buf, q.cols)
	}
	buf.WriteString(" FROM ")
	buf.WriteString(q.table)

	for _, join := range q.joins {
		buf.WriteByte(' ')
		buf.WriteString(string(join.Kind))
		buf.WriteString(" JOIN ")
		buf.WriteString(join.Table)
		buf.WriteString(" ON ")
		buf.WriteString(join.On)
	}

	q.writeWhere(buf)

	if len(q.groupBy) > 0 {
		buf.WriteString(" GROUP BY ")
		writeList(buf, q.groupBy)
	}
	if len(q.having) > 0 {
		buf.WriteString(" HAVING ")
		q.writePredicates(buf, q.having)
	}
	if len(q.sorts) > 0 {
		buf.WriteString(" ORDER BY ")
		for i, sort := range q.sorts {
			if i > 0 {
				buf.Write(comma)
			}
			buf.WriteString(sort.Column)
			buf.WriteByte(' ')
			buf.WriteString(string(sort.Dir))
		}
	}
	if q.hasLimit {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(q.limit))
	}
	if q.hasOffset {
		buf.WriteString(" OFFSET ")
		buf.WriteString(strconv.Itoa(q.offset))
	}
}

func (q *Stmt) writeInsert(buf *bytebufferpool.ByteBuffer) error {
	if q.rows == nil {
		return ErrNoData.while(`building INSERT`).because(errors.New(`no data to insert`))
	}
	if len(q.rows) == 0 {
		return ErrEmptyBatch.while(`building INSERT`).because(errors.New(`empty array of rows to insert`))
	}

	buf.WriteString("INSERT INTO ")
	buf.WriteString(q.table)
	buf.WriteString(" (")
	writeList(buf, q.rows[0].cols)
	buf.WriteString(") VALUES ")

	// Rows are written in their own column order.
	// Only the first one defines the column list.
	d := q.builder.dialect()
	for i, row := range q.rows {
		if i > 0 {
			buf.Write(comma)
		}
		buf.WriteByte('(')
		writeValues(buf, d, row.vals)
		buf.WriteByte(')')
	}
	return nil
}

func (q *Stmt) writeUpdate(buf *bytebufferpool.ByteBuffer) error {
	if q.set == nil || q.set.Len() == 0 {
		return ErrNoData.while(`building UPDATE`).because(errors.New(`no data to update`))
	}

	buf.WriteString("UPDATE ")
	buf.WriteString(q.table)
	buf.WriteString(" SET ")

	d := q.builder.dialect()
	n := 0
	for i, col := range q.set.cols {
		v := q.set.vals[i]
		if _, skip := v.(Unset); skip {
			continue
		}
		if n > 0 {
			buf.Write(comma)
		}
		buf.WriteString(col)
		buf.WriteString(" = ")
		d.WriteValue(buf, v)
		n++
	}

	q.writeWhere(buf)
	return nil
}

func (q *Stmt) writeDelete(buf *bytebufferpool.ByteBuffer) {
	buf.WriteString("DELETE FROM ")
	buf.WriteString(q.table)
	q.writeWhere(buf)
}

func (q *Stmt) writeWhere(buf *bytebufferpool.ByteBuffer) {
	if len(q.where) > 0 {
		buf.WriteString(" WHERE ")
		q.writePredicates(buf, q.where)
	}
}

/*
writePredicates writes a list of conditions.

Every condition but the first is prefixed with its own conjunction.
IN and NOT IN with a value other than a list write nothing.
*/
func (q *Stmt) writePredicates(buf *bytebufferpool.ByteBuffer, list []Predicate) {
	d := q.builder.dialect()
	for i, p := range list {
		if i > 0 {
			buf.WriteByte(' ')
			buf.WriteString(string(p.Conj))
			buf.WriteByte(' ')
		}
		switch p.Op {
		case IsNull, IsNotNull:
			buf.WriteString(p.Column)
			buf.WriteByte(' ')
			buf.WriteString(string(p.Op))
		case In, NotIn:
			values, ok := listValues(p.Value)
			if !ok {
				continue
			}
			buf.WriteString(p.Column)
			buf.WriteByte(' ')
			buf.WriteString(string(p.Op))
			buf.WriteString(" (")
			writeValues(buf, d, values)
			buf.WriteByte(')')
		default:
			buf.WriteString(p.Column)
			buf.WriteByte(' ')
			buf.WriteString(string(p.Op))
			buf.WriteByte(' ')
			d.WriteValue(buf, p.Value)
		}
	}
}

func writeList(buf *bytebufferpool.ByteBuffer, items []string) {
	for i, item := range items {
		if i > 0 {
			buf.Write(comma)
		}
		buf.WriteString(item)
	}
}

func writeValues(buf *bytebufferpool.ByteBuffer, d Dialect, values []interface{}) {
	for i, v := range values {
		if i > 0 {
			buf.Write(comma)
		}
		d.WriteValue(buf, v)
	}
}

var comma = []byte{',', ' '}
