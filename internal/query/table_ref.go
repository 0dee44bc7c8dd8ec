package query

import (
	"fmt"
	"io"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
)

// TableRef is any FROM-list element: a bare table, a join, or a
// subquery, each exposing the relations it binds so the enclosing
// from_clause can fold them into its scope.
type TableRef interface {
	prod.Node
	Refs() []catalog.NamedRelation
}

// tableRefFactory produces one TableRef. Level-conditional: shallow
// productions may recurse into joins or subqueries; deep ones collapse
// to a bare table reference, exactly as original_source/grammar.cc's
// table_ref::factory damps with d6() against the caller's level.
func tableRefFactory(parent prod.Node, s *rng.Source, cfg Config) (TableRef, error) {
	level := parent.Level()
	k := s.D6()
	if level < 3+k {
		if s.D6() > 3 && level < s.D6() {
			if tr, err := newTableSubquery(parent, s, cfg); err == nil {
				return tr, nil
			}
		}
		if s.D6() > 3 {
			if tr, err := newJoinedTable(parent, s, cfg); err == nil {
				return tr, nil
			}
		}
	}
	return newTableOrQueryName(parent, s)
}

// TableOrQueryName binds one catalog table under a synthesized alias.
type TableOrQueryName struct {
	prod.Base
	source string
	rel    *catalog.AliasedRelation
}

func newTableOrQueryName(parent prod.Node, s *rng.Source) (*TableOrQueryName, error) {
	tables := parent.Scope().Tables
	tbl, err := rng.Pick(s, tables)
	if err != nil {
		return nil, fmt.Errorf("query: table_or_query_name: %w", err)
	}
	alias := parent.Scope().StmtUID("ref")
	rel := catalog.NewAliasedRelation(alias, &catalog.ColumnList{Cols: tbl.Columns()})
	return &TableOrQueryName{Base: prod.NewBase(parent, nil), source: tbl.Ident(), rel: rel}, nil
}

func (t *TableOrQueryName) Refs() []catalog.NamedRelation {
	return []catalog.NamedRelation{t.rel}
}

func (t *TableOrQueryName) Emit(w io.Writer) {
	fmt.Fprintf(w, "%s AS %s", t.source, t.rel.Ident())
}
func (t *TableOrQueryName) Accept(v prod.Visitor) { v.Visit(t) }
