package query

import (
	"fmt"
	"io"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
)

// TableSubquery wraps a nested query_spec in a fresh scope and exposes
// its derived table under a synthesized "subq_n" alias.
type TableSubquery struct {
	prod.Base
	alias string
	query *QuerySpec
	rel   *catalog.AliasedRelation
}

func newTableSubquery(parent prod.Node, s *rng.Source, cfg Config) (*TableSubquery, error) {
	n := &TableSubquery{Base: prod.NewBase(parent, nil)}

	inner := parent.Scope().NewChild()
	q, err := newQuerySpec(n, s, cfg, inner)
	if err != nil {
		return nil, err
	}

	alias := parent.Scope().StmtUID("subq")
	n.alias = alias
	n.query = q
	n.rel = catalog.NewAliasedRelation(alias, q.DerivedTable())
	return n, nil
}

func (t *TableSubquery) Refs() []catalog.NamedRelation {
	return []catalog.NamedRelation{t.rel}
}

func (t *TableSubquery) Emit(w io.Writer) {
	fmt.Fprint(w, "(")
	t.query.Emit(w)
	fmt.Fprintf(w, ") AS %s", t.alias)
}
func (t *TableSubquery) Accept(v prod.Visitor) {
	t.query.Accept(v)
	v.Visit(t)
}
