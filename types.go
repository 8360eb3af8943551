package sqlq

// Kind is a statement type a Stmt renders to.
type Kind int

const (
	KindSelect Kind = iota
	KindInsert
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindSelect:
		return "SELECT"
	case KindInsert:
		return "INSERT"
	case KindUpdate:
		return "UPDATE"
	case KindDelete:
		return "DELETE"
	}
	return "UNKNOWN"
}

// Op is a comparison operator of a filter predicate.
type Op string

const (
	Eq        Op = "="
	Ne        Op = "!="
	NotEq     Op = "<>"
	Lt        Op = "<"
	Le        Op = "<="
	Gt        Op = ">"
	Ge        Op = ">="
	Like      Op = "LIKE"
	In        Op = "IN"
	NotIn     Op = "NOT IN"
	IsNull    Op = "IS NULL"
	IsNotNull Op = "IS NOT NULL"
)

// Conj joins a predicate to the one before it.
type Conj string

const (
	And Conj = "AND"
	Or  Conj = "OR"
)

// JoinKind is a type of a JOIN clause.
type JoinKind string

const (
	InnerJoin JoinKind = "INNER"
	LeftJoin  JoinKind = "LEFT"
	RightJoin JoinKind = "RIGHT"
	FullJoin  JoinKind = "FULL"
)

// Direction is a sort order.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

/*
Unset marks a value that was not provided.

It renders as NULL, but an Update field holding Unset is left out
of the SET clause entirely:

	q := sqlq.From("users").Update(sqlq.Values("name", "Bob", "email", sqlq.Unset{}))
	// UPDATE users SET name = 'Bob'
*/
type Unset struct{}

// Predicate is a single condition of a WHERE or HAVING clause.
type Predicate struct {
	Column string
	Op     Op
	Value  interface{}
	Conj   Conj
}

// Join describes a JOIN clause.
type Join struct {
	Kind  JoinKind
	Table string
	On    string
}

// Sort is an ORDER BY item.
type Sort struct {
	Column string
	Dir    Direction
}
