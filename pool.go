package sqlq

import (
	"sync"
)

var stmtPool = sync.Pool{New: newStmt}

func newStmt() interface{} {
	return &Stmt{
		allCols: true,
		where:   make([]Predicate, 0, 4),
	}
}

func getStmt(b *Builder, table string) *Stmt {
	stmt := stmtPool.Get().(*Stmt)
	stmt.builder = b
	stmt.table = table
	return stmt
}

func reuseStmt(q *Stmt) {
	stmtPool.Put(q)
}
