package query

import (
	"fmt"
	"io"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/expr"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
	"github.com/trueeyu/sqlsmith/internal/scope"
)

// QuerySpec is one SELECT statement: an optional set quantifier, a
// select list, a from clause, a mandatory WHERE predicate, and an
// optional LIMIT. Mirrors original_source/grammar.cc's query_spec.
type QuerySpec struct {
	prod.Base
	distinct bool
	from     *FromClause
	list     *SelectList
	where    expr.BoolExpr
	limit    int // 0 means "no limit clause"
}

func newQuerySpec(parent prod.Node, s *rng.Source, cfg Config, sc *scope.Scope) (*QuerySpec, error) {
	n := &QuerySpec{Base: prod.NewBase(parent, sc)}

	// from_clause first so its refs populate the scope before the
	// select list and WHERE expression are built.
	from, err := newFromClause(n, s, cfg)
	if err != nil {
		return nil, err
	}
	n.from = from

	n.distinct = s.D100() == 1

	list, err := newSelectList(n, s, sc.Schema, cfg.SingleColumnSelectList)
	if err != nil {
		return nil, err
	}
	n.list = list

	where, err := expr.BoolFactory(n, s, sc.Schema)
	if err != nil {
		return nil, err
	}
	n.where = where

	if s.D6() > 1 {
		n.limit = s.D100() + s.D100()
	}
	return n, nil
}

// DerivedTable exposes this query's select list as a Relation, so a
// table_subquery can bind it under an alias.
func (q *QuerySpec) DerivedTable() catalog.Relation { return q.list.DerivedTable() }

func (q *QuerySpec) Emit(w io.Writer) {
	io.WriteString(w, "select ")
	if q.distinct {
		io.WriteString(w, "distinct ")
	}
	q.list.Emit(w)
	io.WriteString(w, " ")
	q.from.Emit(w)
	io.WriteString(w, " where ")
	q.where.Emit(w)
	if q.limit > 0 {
		fmt.Fprintf(w, " limit %d", q.limit)
	}
}

func (q *QuerySpec) Accept(v prod.Visitor) {
	q.from.Accept(v)
	q.list.Accept(v)
	q.where.Accept(v)
	v.Visit(q)
}
