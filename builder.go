package sqlq

import (
	"log"
)

var defaultBuilder = &Builder{Dialect: NoDialect()}

/*
SetDialect selects a Dialect to be used by default Builder

	sqlq.SetDialect(sqlq.PostgreSQL())
*/
func SetDialect(dialect Dialect) {
	defaultBuilder.Dialect = dialect
}

/*
SetLogger makes the default Builder log every statement it builds.

	sqlq.SetLogger(log.New(os.Stderr, "", log.LstdFlags))

Pass nil to turn logging off.
*/
func SetLogger(logger *log.Logger) {
	defaultBuilder.Logger = logger
}

// NewBuilder creates a new SQL builder instance.
func NewBuilder(dialect Dialect) *Builder {
	return &Builder{Dialect: dialect}
}

/*
Builder defines a way SQL statements are built.

In most cases a default builder can be used:

	q := sqlq.From("users").Where("active", sqlq.Eq, true)
	// SELECT * FROM users WHERE active = 1

Create a Builder instance if an application needs to target multiple
database engines:

	pg := sqlq.NewBuilder(sqlq.PostgreSQL())
	q := pg.From("users").Where("active", sqlq.Eq, true)
	// SELECT * FROM users WHERE active = TRUE

Logger, when set, receives every successfully built statement.
*/
type Builder struct {
	Dialect Dialect
	Logger  *log.Logger
}

/*
From starts a statement for a table.

A new statement selects all columns. Call Insert, Update or Delete
to turn it into another kind of statement.
*/
func (b *Builder) From(table string) *Stmt {
	return getStmt(b, table)
}

/*
From starts a statement for a table using the default Builder.

	sql, err := sqlq.From("users").
		Select("id", "name").
		Where("age", sqlq.Ge, 18).
		OrderBy("name").
		Build()
*/
func From(table string) *Stmt {
	return defaultBuilder.From(table)
}

func (b *Builder) dialect() Dialect {
	if b == nil || b.Dialect == nil {
		return defaultDialect
	}
	return b.Dialect
}

func (b *Builder) logf(format string, args ...interface{}) {
	if b != nil && b.Logger != nil {
		b.Logger.Printf(format, args...)
	}
}
