package sqlq_test

import (
	"errors"
	"testing"
	"time"

	"github.com/leporo/sqlq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Record struct {
	ID int64 `db:"id"`
}

type User struct {
	Record
	Name    string    `db:"name"`
	Email   *string   `db:"email"`
	Active  bool      `db:"active"`
	Created time.Time `db:"-"`
	Note    string
}

func TestValues(t *testing.T) {
	row := sqlq.Values("id", 1, "name", "Ann")
	assert.Equal(t, []string{"id", "name"}, row.Cols())
	assert.Equal(t, 2, row.Len())

	v, ok := row.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Ann", v)

	_, ok = row.Get("email")
	assert.False(t, ok)
}

func TestValuesPanics(t *testing.T) {
	assert.Panics(t, func() { sqlq.Values("id") })

	defer func() {
		err, _ := recover().(error)
		require.Error(t, err)
		assert.True(t, errors.Is(err, sqlq.ErrInvalidInput))
	}()
	sqlq.Values(1, "id")
}

func TestRowSet(t *testing.T) {
	base := sqlq.Values("a", 1, "b", 2)
	replaced := base.Set("a", 10)
	added := base.Set("c", 3)

	assert.Equal(t, []string{"a", "b"}, replaced.Cols())
	v, _ := replaced.Get("a")
	assert.Equal(t, 10, v)

	// The original row is never changed
	v, _ = base.Get("a")
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"a", "b"}, base.Cols())
	assert.Equal(t, []string{"a", "b", "c"}, added.Cols())
}

func TestRowOfStruct(t *testing.T) {
	email := "ann@example.com"
	u := User{Record: Record{ID: 1}, Name: "Ann", Email: &email, Active: true, Note: "skip"}

	row := sqlq.RowOf(u)
	assert.Equal(t, []string{"id", "name", "email", "active"}, row.Cols())

	q := sqlq.From("users").Insert(row)
	defer q.Close()
	assert.Equal(t, "INSERT INTO users (id, name, email, active) VALUES (1, 'Ann', 'ann@example.com', 1)", q.MustBuild())

	q.Update(sqlq.RowOf(&User{Name: "Bob"})).Where("id", sqlq.Eq, 1)
	assert.Equal(t, "UPDATE users SET id = 0, name = 'Bob', email = NULL, active = 0 WHERE id = 1", q.MustBuild())
}

func TestRowOfMap(t *testing.T) {
	row := sqlq.RowOf(map[string]interface{}{"name": "Ann", "age": 30, "id": 1})
	assert.Equal(t, []string{"age", "id", "name"}, row.Cols())
}

func TestRowOfInvalid(t *testing.T) {
	assert.Panics(t, func() { sqlq.RowOf(42) })
	assert.Panics(t, func() { sqlq.RowOf(nil) })
	assert.Equal(t, 0, sqlq.RowOf((*User)(nil)).Len())
}

func TestCols(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "email", "active"}, sqlq.Cols[User]())
	assert.Equal(t, []string{"id"}, sqlq.Cols[*Record]())
	assert.Panics(t, func() { sqlq.Cols[int]() })

	q := sqlq.From("users").Select(sqlq.Cols[User]()...)
	defer q.Close()
	assert.Equal(t, "SELECT id, name, email, active FROM users", q.MustBuild())
}
