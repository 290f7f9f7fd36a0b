package notestore

import (
	"database/sql"
	"strings"
)

// Filter holds the optional list criteria. Zero values mean "no constraint".
//
// Keyword is matched as a substring of title or content using SQLite's
// default LIKE collation, which is case-insensitive for ASCII. FromDate and
// ToDate are inclusive bounds on created_at, compared as opaque
// lexically-ordered timestamp strings; bounds are not parsed or validated, so
// a malformed bound silently matches nothing or everything under that
// ordering.
type Filter struct {
	Keyword  string
	FromDate string
	ToDate   string
}

// Conjunct is one compiled filter condition: a clause fragment plus the named
// parameter it binds. Caller input only ever appears as a bound value, never
// in the clause text.
type Conjunct struct {
	Clause string
	Name   string
	Value  any
}

// Predicate is an ordered list of conjuncts combined with AND.
type Predicate []Conjunct

// Compile translates the present criteria into a predicate. An empty filter
// compiles to an empty predicate, which matches every row.
func (f Filter) Compile() Predicate {
	var p Predicate
	if f.Keyword != "" {
		p = append(p, Conjunct{
			Clause: "(title LIKE :kw OR content LIKE :kw)",
			Name:   "kw",
			Value:  "%" + f.Keyword + "%",
		})
	}
	if f.FromDate != "" {
		p = append(p, Conjunct{
			Clause: "created_at >= :from_date",
			Name:   "from_date",
			Value:  f.FromDate,
		})
	}
	if f.ToDate != "" {
		p = append(p, Conjunct{
			Clause: "created_at <= :to_date",
			Name:   "to_date",
			Value:  f.ToDate,
		})
	}
	return p
}

// Where renders the combined WHERE clause and its bound arguments. An empty
// predicate renders as an empty clause.
func (p Predicate) Where() (string, []any) {
	if len(p) == 0 {
		return "", nil
	}
	clauses := make([]string, len(p))
	args := make([]any, len(p))
	for i, c := range p {
		clauses[i] = c.Clause
		args[i] = sql.Named(c.Name, c.Value)
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}
