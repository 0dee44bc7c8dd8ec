// Package expr implements the value_expr / bool_expr subsystem: the
// typed scalar expression grammar that query.QuerySpec's select list,
// WHERE clause, and join conditions draw from. Grounded on spec.md
// §4.4's black-box contract and built in the same retry-harness idiom
// as original_source/grammar.cc's table_ref/join_cond factories.
package expr

import (
	"fmt"
	"io"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
	"github.com/trueeyu/sqlsmith/internal/scope"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

// ValueExpr is any typed scalar expression production.
type ValueExpr interface {
	prod.Node
	Type() *sqltype.Type
}

// ColumnRef is a value_expr leaf that resolves to a column visible in
// scope, e.g. "orders.total".
type ColumnRef struct {
	prod.Base
	ref scope.ColumnRef
}

func newColumnRef(parent prod.Node, s *rng.Source, required *sqltype.Type) (*ColumnRef, error) {
	candidates := parent.Scope().RefsOfType(required)
	ref, err := rng.Pick(s, candidates)
	if err != nil {
		return nil, err
	}
	return &ColumnRef{Base: prod.NewBase(parent, nil), ref: ref}, nil
}

func (c *ColumnRef) Type() *sqltype.Type { return c.ref.Column.Type }
func (c *ColumnRef) Emit(w io.Writer)    { fmt.Fprint(w, c.ref.Reference()) }
func (c *ColumnRef) Accept(v prod.Visitor) { v.Visit(c) }

// Constant is a typed literal, the fallback leaf when no column or
// operator alternative is available.
type Constant struct {
	prod.Base
	typ     *sqltype.Type
	literal string
}

func newConstant(parent prod.Node, s *rng.Source, sch *catalog.Schema, required *sqltype.Type) *Constant {
	typ := required
	if typ == nil {
		typ = sch.IntType
	}
	var lit string
	switch typ {
	case sch.BoolType:
		if s.D6() > 3 {
			lit = "true"
		} else {
			lit = "false"
		}
	case sch.DoubleType:
		lit = fmt.Sprintf("%d.%d", s.D100(), s.D100())
	case sch.VarcharType:
		lit = fmt.Sprintf("'str_%d'", s.D100())
	default:
		lit = fmt.Sprintf("%d", s.D100())
	}
	return &Constant{Base: prod.NewBase(parent, nil), typ: typ, literal: lit}
}

func (c *Constant) Type() *sqltype.Type   { return c.typ }
func (c *Constant) Emit(w io.Writer)      { fmt.Fprint(w, c.literal) }
func (c *Constant) Accept(v prod.Visitor) { v.Visit(c) }
