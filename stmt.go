package sqlq

import (
	"github.com/samber/lo"
)

/*
Stmt accumulates the parts of an SQL statement and renders it on Build.

Use From to create one:

	q := sqlq.From("users").
		Select("id", "name").
		Where("age", sqlq.Ge, 18).
		OrWhere("is_admin", sqlq.Eq, true)
	sql, err := q.Build()
	// SELECT id, name FROM users WHERE age >= 18 OR is_admin = 1

Every method modifies the statement in place and returns it. Select,
Insert, Update and Delete switch the kind of statement to be built;
the last call wins.

A Stmt is not safe for concurrent use. Clone it to hand a copy to
another goroutine.
*/
type Stmt struct {
	builder *Builder
	table   string
	kind    Kind

	allCols bool
	cols    []string

	where   []Predicate
	joins   []Join
	sorts   []Sort
	groupBy []string
	having  []Predicate

	limit     int
	offset    int
	hasLimit  bool
	hasOffset bool

	rows []Row
	set  *Row

	sql        string
	sqlDialect Dialect
}

// Select sets columns of a SELECT statement.
func (q *Stmt) Select(columns ...string) *Stmt {
	q.kind = KindSelect
	q.allCols = false
	q.cols = columns
	q.Invalidate()
	return q
}

// SelectAll makes a SELECT statement return all columns.
func (q *Stmt) SelectAll() *Stmt {
	q.kind = KindSelect
	q.allCols = true
	q.cols = nil
	q.Invalidate()
	return q
}

/*
SelectRaw sets a single raw expression to be selected.

	q.SelectRaw("COUNT(*) AS cnt")

The expression is written as is.
*/
func (q *Stmt) SelectRaw(expr string) *Stmt {
	return q.Select(expr)
}

/*
Where adds a filter joined with AND:

	sqlq.From("users").
		Where("email", sqlq.Eq, email).
		Where("deleted_at", sqlq.IsNull)

value is omitted for IS NULL and IS NOT NULL.
IN and NOT IN expect a slice.
*/
func (q *Stmt) Where(column string, op Op, value ...interface{}) *Stmt {
	q.where = append(q.where, predicate(column, op, And, value))
	q.Invalidate()
	return q
}

// OrWhere adds a filter joined with OR.
func (q *Stmt) OrWhere(column string, op Op, value ...interface{}) *Stmt {
	q.where = append(q.where, predicate(column, op, Or, value))
	q.Invalidate()
	return q
}

/*
WhereIn adds an IN filter joined with AND.

	q.WhereIn("status", []string{"new", "open"})
	// status IN ('new', 'open')

values must be a slice or an array. Anything else yields an empty
condition.
*/
func (q *Stmt) WhereIn(column string, values interface{}) *Stmt {
	return q.Where(column, In, values)
}

// WhereNull adds an IS NULL filter.
func (q *Stmt) WhereNull(column string) *Stmt {
	return q.Where(column, IsNull)
}

// WhereNotNull adds an IS NOT NULL filter.
func (q *Stmt) WhereNotNull(column string) *Stmt {
	return q.Where(column, IsNotNull)
}

/*
Join adds an INNER JOIN clause

	q.Join("orders o", "o.user_id = users.id")
*/
func (q *Stmt) Join(table, on string) *Stmt {
	return q.AddJoin(InnerJoin, table, on)
}

// LeftJoin adds a LEFT JOIN clause
func (q *Stmt) LeftJoin(table, on string) *Stmt {
	return q.AddJoin(LeftJoin, table, on)
}

// RightJoin adds a RIGHT JOIN clause
func (q *Stmt) RightJoin(table, on string) *Stmt {
	return q.AddJoin(RightJoin, table, on)
}

// AddJoin adds a JOIN clause of any kind, FullJoin included.
func (q *Stmt) AddJoin(kind JoinKind, table, on string) *Stmt {
	q.joins = append(q.joins, Join{Kind: kind, Table: table, On: on})
	q.Invalidate()
	return q
}

// OrderBy adds an ORDER BY item. Direction defaults to Asc.
func (q *Stmt) OrderBy(column string, dir ...Direction) *Stmt {
	d := Asc
	if len(dir) > 0 {
		d = dir[0]
	}
	q.sorts = append(q.sorts, Sort{Column: column, Dir: d})
	q.Invalidate()
	return q
}

// GroupBy sets the GROUP BY clause, replacing any previous one.
func (q *Stmt) GroupBy(columns ...string) *Stmt {
	q.groupBy = columns
	q.Invalidate()
	return q
}

// Having adds a HAVING condition joined with AND.
func (q *Stmt) Having(column string, op Op, value ...interface{}) *Stmt {
	q.having = append(q.having, predicate(column, op, And, value))
	q.Invalidate()
	return q
}

// Limit sets a limit on number of returned rows
func (q *Stmt) Limit(limit int) *Stmt {
	q.limit, q.hasLimit = limit, true
	q.Invalidate()
	return q
}

// Offset sets a number of rows to skip
func (q *Stmt) Offset(offset int) *Stmt {
	q.offset, q.hasOffset = offset, true
	q.Invalidate()
	return q
}

// Paginate provides an easy way to set offset and limit
func (q *Stmt) Paginate(page, pageSize int) *Stmt {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if page > 1 {
		q.Offset((page - 1) * pageSize)
	}
	q.Limit(pageSize)
	return q
}

/*
Insert turns the statement into an INSERT.

	q := sqlq.From("users").Insert(
		sqlq.Values("id", 1, "name", "Ann"),
		sqlq.Values("id", 2, "name", "Bob"),
	)
	// INSERT INTO users (id, name) VALUES (1, 'Ann'), (2, 'Bob')

Columns are taken from the first row. Every other row must list the
same columns in the same order; this is not checked.
*/
func (q *Stmt) Insert(rows ...Row) *Stmt {
	q.kind = KindInsert
	q.rows = append(make([]Row, 0, len(rows)), rows...)
	q.Invalidate()
	return q
}

/*
Update turns the statement into an UPDATE.

	q := sqlq.From("users").
		Update(sqlq.Values("name", "Ann")).
		Where("id", sqlq.Eq, 1)
	// UPDATE users SET name = 'Ann' WHERE id = 1

Fields set to Unset{} are skipped.
*/
func (q *Stmt) Update(row Row) *Stmt {
	q.kind = KindUpdate
	q.set = &row
	q.Invalidate()
	return q
}

// Delete turns the statement into a DELETE.
func (q *Stmt) Delete() *Stmt {
	q.kind = KindDelete
	q.Invalidate()
	return q
}

// Kind returns the kind of statement Build produces.
func (q *Stmt) Kind() Kind {
	return q.kind
}

/*
ParamCount returns the number of values WHERE and HAVING conditions
would bind if the statement were parameterized.

IS NULL and IS NOT NULL conditions count as zero, IN and NOT IN
as the length of their list and everything else as one.
*/
func (q *Stmt) ParamCount() int {
	return lo.SumBy(q.where, predicateParams) + lo.SumBy(q.having, predicateParams)
}

func predicateParams(p Predicate) int {
	switch p.Op {
	case IsNull, IsNotNull:
		return 0
	case In, NotIn:
		if values, ok := listValues(p.Value); ok {
			return len(values)
		}
	}
	return 1
}

/*
Build renders the statement.

Errors:

	ErrNoData           Insert without rows, Update with an empty row
	ErrEmptyBatch       Insert called with no rows
	ErrUnsupportedKind  statement kind is none of the four known ones

Build caches its result until the statement is changed or its Builder
switches to another Dialect. Slices passed to WhereIn, Select and such
are not copied; call Invalidate after changing one in place.
*/
func (q *Stmt) Build() (string, error) {
	d := q.builder.dialect()
	if q.sql != "" && q.sqlDialect == d {
		return q.sql, nil
	}
	sql, err := q.render()
	if err != nil {
		return "", err
	}
	q.sql, q.sqlDialect = sql, d
	q.builder.logf("[SQL] %s", sql)
	return sql, nil
}

// MustBuild is like Build but panics on error.
func (q *Stmt) MustBuild() string {
	sql, err := q.Build()
	if err != nil {
		panic(err)
	}
	return sql
}

// String returns a built statement or an empty string if it can't be built.
func (q *Stmt) String() string {
	sql, _ := q.Build()
	return sql
}

// Invalidate forces a rebuild on next Build call
func (q *Stmt) Invalidate() {
	q.sql, q.sqlDialect = "", nil
}

/*
Clone creates a copy of the statement.

Lists of conditions, joins and such are copied, so appending to a
clone never affects the original:

	base := sqlq.From("users").Where("active", sqlq.Eq, true)
	admins := base.Clone().Where("role", sqlq.Eq, "admin")
*/
func (q *Stmt) Clone() *Stmt {
	stmt := getStmt(q.builder, q.table)
	stmt.kind = q.kind
	stmt.allCols = q.allCols
	stmt.cols = cloneSlice(q.cols)
	stmt.where = cloneSlice(q.where)
	stmt.joins = cloneSlice(q.joins)
	stmt.sorts = cloneSlice(q.sorts)
	stmt.groupBy = cloneSlice(q.groupBy)
	stmt.having = cloneSlice(q.having)
	stmt.limit, stmt.hasLimit = q.limit, q.hasLimit
	stmt.offset, stmt.hasOffset = q.offset, q.hasOffset
	stmt.rows = cloneSlice(q.rows)
	if q.set != nil {
		set := *q.set
		stmt.set = &set
	}
	stmt.sql, stmt.sqlDialect = q.sql, q.sqlDialect
	return stmt
}

/*
Close puts the statement back to a pool for reuse by other Stmt instances.

	q := sqlq.From("users").Where("id", sqlq.Eq, 42)
	sql, err := q.Build()
	q.Close()

Stmt instance should not be used after Close method call.
*/
func (q *Stmt) Close() {
	q.reset()
	reuseStmt(q)
}

func (q *Stmt) reset() {
	where := q.where[:0]
	for n := range q.where {
		q.where[n] = Predicate{}
	}
	*q = Stmt{allCols: true, where: where}
}

func predicate(column string, op Op, conj Conj, value []interface{}) Predicate {
	p := Predicate{Column: column, Op: op, Conj: conj, Value: Unset{}}
	if len(value) > 0 {
		p.Value = value[0]
	}
	return p
}
