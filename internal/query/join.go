package query

import (
	"fmt"
	"io"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/expr"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
)

// joinType is one of inner/left/right, drawn with the weights
// original_source/grammar.cc's joined_table constructor uses.
type joinType int

const (
	joinInner joinType = iota
	joinLeft
	joinRight
)

func (j joinType) String() string {
	switch j {
	case joinLeft:
		return "left"
	case joinRight:
		return "right"
	default:
		return "inner"
	}
}

func drawJoinType(s *rng.Source, cfg Config) joinType {
	w := cfg.weights()
	if s.D6() < w[0] {
		return joinInner
	}
	if s.D6() < w[1] {
		return joinLeft
	}
	return joinRight
}

// JoinedTable is "lhs TYPE join rhs on (cond)". lhs may itself be a join
// (built recursively via tableRefFactory), which is how left-deep join
// chains arise.
type JoinedTable struct {
	prod.Base
	kind     joinType
	lhs, rhs TableRef
	cond     JoinCond
}

func newJoinedTable(parent prod.Node, s *rng.Source, cfg Config) (*JoinedTable, error) {
	n := &JoinedTable{Base: prod.NewBase(parent, nil), kind: drawJoinType(s, cfg)}

	lhs, err := tableRefFactory(n, s, cfg)
	if err != nil {
		return nil, err
	}
	rhs, err := newTableOrQueryName(n, s)
	if err != nil {
		return nil, err
	}
	cond, err := joinCondFactory(n, s, cfg, lhs.Refs(), rhs.Refs())
	if err != nil {
		return nil, err
	}
	n.lhs, n.rhs, n.cond = lhs, rhs, cond
	return n, nil
}

func (j *JoinedTable) Refs() []catalog.NamedRelation {
	return append(append([]catalog.NamedRelation(nil), j.lhs.Refs()...), j.rhs.Refs()...)
}

func (j *JoinedTable) Emit(w io.Writer) {
	j.lhs.Emit(w)
	fmt.Fprintf(w, " %s join ", j.kind)
	j.rhs.Emit(w)
	fmt.Fprint(w, " on (")
	j.cond.Emit(w)
	fmt.Fprint(w, ")")
}
func (j *JoinedTable) Accept(v prod.Visitor) {
	j.lhs.Accept(v)
	j.rhs.Accept(v)
	j.cond.Accept(v)
	v.Visit(j)
}

// JoinCond is any join-condition production.
type JoinCond interface {
	prod.Node
}

func joinCondFactory(parent prod.Node, s *rng.Source, cfg Config, lhs, rhs []catalog.NamedRelation) (JoinCond, error) {
	if cfg.EnableExprJoinCond && s.D6() > 3 {
		if c, err := newExprJoinCond(parent, s, lhs, rhs); err == nil {
			return c, nil
		}
	}
	return newSimpleJoinCond(parent, s, lhs, rhs)
}

// SimpleJoinCond is an equi-join on a column pair of matching type:
// "lhs.col = rhs.col".
type SimpleJoinCond struct {
	prod.Base
	left, right catalog.Column
	leftRel, rightRel catalog.NamedRelation
}

// newSimpleJoinCond retries the whole condition, with a fresh lhs
// relation and column each time, until an rhs column of matching type is
// found or prod.DefaultMaxRetries attempts have failed.
func newSimpleJoinCond(parent prod.Node, s *rng.Source, lhsRels, rhsRels []catalog.NamedRelation) (*SimpleJoinCond, error) {
	var err error
	for attempt := 0; attempt < prod.DefaultMaxRetries; attempt++ {
		var c *SimpleJoinCond
		if c, err = trySimpleJoinCond(parent, s, lhsRels, rhsRels); err == nil {
			return c, nil
		}
	}
	return nil, err
}

func trySimpleJoinCond(parent prod.Node, s *rng.Source, lhsRels, rhsRels []catalog.NamedRelation) (*SimpleJoinCond, error) {
	leftRel, err := rng.Pick(s, lhsRels)
	if err != nil {
		return nil, fmt.Errorf("query: simple_join_cond: %w", err)
	}
	leftCols := leftRel.Columns()
	leftCol, err := rng.Pick(s, leftCols)
	if err != nil {
		return nil, fmt.Errorf("query: simple_join_cond: lhs has no columns: %w", err)
	}

	var rightRel catalog.NamedRelation
	var rightCol catalog.Column
	found := false
	for _, rel := range rhsRels {
		for _, col := range rel.Columns() {
			if leftCol.Type.Consistent(col.Type) {
				rightRel, rightCol, found = rel, col, true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("query: simple_join_cond: no matching column type on rhs")
	}

	return &SimpleJoinCond{
		Base: prod.NewBase(parent, nil),
		left: leftCol, right: rightCol,
		leftRel: leftRel, rightRel: rightRel,
	}, nil
}

func (c *SimpleJoinCond) Emit(w io.Writer) {
	fmt.Fprintf(w, "%s.%s = %s.%s", c.leftRel.Ident(), c.left.Name, c.rightRel.Ident(), c.right.Name)
}
func (c *SimpleJoinCond) Accept(v prod.Visitor) { v.Visit(c) }

// ExprJoinCond is an arbitrary bool_expr over the union of both sides'
// refs. Reachable only when Config.EnableExprJoinCond is set.
type ExprJoinCond struct {
	prod.Base
	cond expr.BoolExpr
}

func newExprJoinCond(parent prod.Node, s *rng.Source, lhsRels, rhsRels []catalog.NamedRelation) (*ExprJoinCond, error) {
	joinScope := parent.Scope().NewChild()
	for _, rel := range append(append([]catalog.NamedRelation(nil), lhsRels...), rhsRels...) {
		joinScope.BindRef(rel)
	}

	n := &ExprJoinCond{Base: prod.NewBase(parent, joinScope)}
	cond, err := expr.BoolFactory(n, s, parent.Scope().Schema)
	if err != nil {
		return nil, err
	}
	n.cond = cond
	return n, nil
}

func (c *ExprJoinCond) Emit(w io.Writer)      { c.cond.Emit(w) }
func (c *ExprJoinCond) Accept(v prod.Visitor) { c.cond.Accept(v); v.Visit(c) }
