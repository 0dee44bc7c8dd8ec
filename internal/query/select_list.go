package query

import (
	"fmt"
	"io"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/expr"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
)

// selItem is one "<expr> AS cN" entry.
type selItem struct {
	alias string
	value expr.ValueExpr
}

// SelectList is a non-empty ordered sequence of value_exprs, each bound
// to a synthesized column name c0, c1, .... Continues while d6() > 1,
// so each further column follows with probability 5/6 (geometric, an
// expected 5 extra columns beyond the first),
// matching original_source/grammar.cc's select_list constructor.
type SelectList struct {
	prod.Base
	items []selItem
}

func newSelectList(parent prod.Node, s *rng.Source, sch *catalog.Schema, singleColumn bool) (*SelectList, error) {
	n := &SelectList{Base: prod.NewBase(parent, nil)}

	i := 0
	for {
		v, err := expr.Factory(n, s, sch, nil)
		if err != nil {
			return nil, err
		}
		n.items = append(n.items, selItem{alias: fmt.Sprintf("c%d", i), value: v})
		i++
		if singleColumn || s.D6() <= 1 {
			break
		}
	}
	return n, nil
}

func (l *SelectList) Emit(w io.Writer) {
	for i, it := range l.items {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		it.value.Emit(w)
		fmt.Fprintf(w, " as %s", it.alias)
	}
}
func (l *SelectList) Accept(v prod.Visitor) {
	for _, it := range l.items {
		it.value.Accept(v)
	}
	v.Visit(l)
}

// DerivedTable returns the relation exported by this select list: its
// columns are (cN, type_of(expr)) in order, so enclosing subqueries can
// consume it as a table.
func (l *SelectList) DerivedTable() catalog.Relation {
	cols := make([]catalog.Column, len(l.items))
	for i, it := range l.items {
		cols[i] = catalog.Column{Name: it.alias, Type: it.value.Type()}
	}
	return &catalog.ColumnList{Cols: cols}
}
