package sqlq

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/mitranim/refut"
	"github.com/samber/lo"
)

/*
Row is an ordered set of column values used by Insert and Update.

Columns render in the order they were first set:

	row := sqlq.Values("id", 1, "name", "O'Brien")
	row = row.Set("email", nil)
	// (id, name, email) VALUES (1, 'O''Brien', NULL)
*/
type Row struct {
	cols []string
	vals []interface{}
}

/*
Values creates a Row from column/value pairs.

Panics if the number of arguments is odd or a column name is not a string.
*/
func Values(pairs ...interface{}) Row {
	if len(pairs)%2 != 0 {
		panic(ErrInvalidInput.while(`creating a row`).because(
			fmt.Errorf(`expected column/value pairs, got %d arguments`, len(pairs))))
	}
	var row Row
	for i := 0; i < len(pairs); i += 2 {
		col, ok := pairs[i].(string)
		if !ok {
			panic(ErrInvalidInput.while(`creating a row`).because(
				fmt.Errorf(`expected a column name at position %d, got %T`, i, pairs[i])))
		}
		row = row.Set(col, pairs[i+1])
	}
	return row
}

// Set returns a row with a column value added or replaced.
// A replaced column keeps its position.
func (r Row) Set(col string, value interface{}) Row {
	if i := lo.IndexOf(r.cols, col); i >= 0 {
		vals := make([]interface{}, len(r.vals))
		copy(vals, r.vals)
		vals[i] = value
		return Row{cols: r.cols, vals: vals}
	}
	return Row{
		cols: append(r.cols[:len(r.cols):len(r.cols)], col),
		vals: append(r.vals[:len(r.vals):len(r.vals)], value),
	}
}

// Get returns a column value.
func (r Row) Get(col string) (interface{}, bool) {
	if i := lo.IndexOf(r.cols, col); i >= 0 {
		return r.vals[i], true
	}
	return nil, false
}

// Cols returns column names in order.
func (r Row) Cols() []string {
	return r.cols
}

// Len returns the number of columns.
func (r Row) Len() int {
	return len(r.cols)
}

/*
RowOf converts a struct or a map into a Row.

Struct fields are taken in declaration order, embedded structs included,
and named by their `db` tags. Fields without a tag are skipped:

	type User struct {
		ID    int64  `db:"id"`
		Name  string `db:"name"`
		cache []byte
	}

	sqlq.From("users").Insert(sqlq.RowOf(User{ID: 1, Name: "Ann"}))
	// INSERT INTO users (id, name) VALUES (1, 'Ann')

Map keys are sorted, as maps carry no order of their own.

Panics on any other input.
*/
func RowOf(v interface{}) Row {
	switch v := v.(type) {
	case Row:
		return v
	case map[string]interface{}:
		keys := lo.Keys(v)
		sort.Strings(keys)
		var row Row
		for _, key := range keys {
			row = row.Set(key, v[key])
		}
		return row
	}

	rval := reflect.ValueOf(v)
	if !rval.IsValid() || refut.RtypeDeref(rval.Type()).Kind() != reflect.Struct {
		panic(ErrInvalidInput.while(`converting a value to a row`).because(
			fmt.Errorf(`expected a struct or map[string]interface{}, got %T`, v)))
	}

	var row Row
	if refut.IsRvalNil(rval) {
		return row
	}
	err := refut.TraverseStructRval(rval, func(rval reflect.Value, sfield reflect.StructField, _ []int) error {
		col := refut.TagIdent(sfield.Tag.Get("db"))
		if col == "" {
			return nil
		}
		row = row.Set(col, rval.Interface())
		return nil
	})
	if err != nil {
		panic(err)
	}
	return row
}

/*
Cols lists the `db` tagged column names of a struct type:

	q := sqlq.From("users").Select(sqlq.Cols[User]()...)
	// SELECT id, name FROM users
*/
func Cols[T any]() []string {
	rtype := refut.RtypeDeref(reflect.TypeOf((*T)(nil)).Elem())
	if rtype.Kind() != reflect.Struct {
		panic(ErrInvalidInput.while(`listing struct columns`).because(
			fmt.Errorf(`expected struct, got %q`, rtype)))
	}

	var cols []string
	err := refut.TraverseStructRtype(rtype, func(sfield reflect.StructField, _ []int) error {
		if col := refut.TagIdent(sfield.Tag.Get("db")); col != "" {
			cols = append(cols, col)
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
	return cols
}
