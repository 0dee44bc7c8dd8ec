package expr

import (
	"fmt"
	"io"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
)

// BoolExpr is any production whose static type is BOOLEAN.
type BoolExpr interface {
	prod.Node
}

// Comparison is "<lhs> <op> <rhs>" drawn from catalog.Schema.Operators
// filtered to operators returning BOOLEAN.
type Comparison struct {
	prod.Base
	op       catalog.Operator
	lhs, rhs ValueExpr
}

func newComparison(parent prod.Node, s *rng.Source, sch *catalog.Schema) (*Comparison, error) {
	candidates := sch.OperatorsReturning(sch.BoolType)
	op, err := rng.Pick(s, candidates)
	if err != nil {
		return nil, err
	}
	n := &Comparison{Base: prod.NewBase(parent, nil), op: op}
	lhs, err := Factory(n, s, sch, op.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := Factory(n, s, sch, op.Right)
	if err != nil {
		return nil, err
	}
	n.lhs, n.rhs = lhs, rhs
	return n, nil
}

func (c *Comparison) Emit(w io.Writer) {
	fmt.Fprint(w, "(")
	c.lhs.Emit(w)
	fmt.Fprintf(w, " %s ", c.op.Name)
	c.rhs.Emit(w)
	fmt.Fprint(w, ")")
}
func (c *Comparison) Accept(v prod.Visitor) {
	c.lhs.Accept(v)
	c.rhs.Accept(v)
	v.Visit(c)
}

// logicalBinary implements LogicalAnd and LogicalOr, which differ only
// in their connective keyword.
type logicalBinary struct {
	prod.Base
	connective string
	lhs, rhs   BoolExpr
}

func newLogicalBinary(parent prod.Node, s *rng.Source, sch *catalog.Schema, connective string) (*logicalBinary, error) {
	n := &logicalBinary{Base: prod.NewBase(parent, nil), connective: connective}
	lhs, err := BoolFactory(n, s, sch)
	if err != nil {
		return nil, err
	}
	rhs, err := BoolFactory(n, s, sch)
	if err != nil {
		return nil, err
	}
	n.lhs, n.rhs = lhs, rhs
	return n, nil
}

func (l *logicalBinary) Emit(w io.Writer) {
	fmt.Fprint(w, "(")
	l.lhs.Emit(w)
	fmt.Fprintf(w, " %s ", l.connective)
	l.rhs.Emit(w)
	fmt.Fprint(w, ")")
}
func (l *logicalBinary) Accept(v prod.Visitor) {
	l.lhs.Accept(v)
	l.rhs.Accept(v)
	v.Visit(l)
}

// LogicalAnd is "<lhs> and <rhs>".
type LogicalAnd struct{ logicalBinary }

func newLogicalAnd(parent prod.Node, s *rng.Source, sch *catalog.Schema) (*LogicalAnd, error) {
	b, err := newLogicalBinary(parent, s, sch, "and")
	if err != nil {
		return nil, err
	}
	return &LogicalAnd{logicalBinary: *b}, nil
}

// LogicalOr is "<lhs> or <rhs>".
type LogicalOr struct{ logicalBinary }

func newLogicalOr(parent prod.Node, s *rng.Source, sch *catalog.Schema) (*LogicalOr, error) {
	b, err := newLogicalBinary(parent, s, sch, "or")
	if err != nil {
		return nil, err
	}
	return &LogicalOr{logicalBinary: *b}, nil
}

// LogicalNot is "not <operand>".
type LogicalNot struct {
	prod.Base
	operand BoolExpr
}

func newLogicalNot(parent prod.Node, s *rng.Source, sch *catalog.Schema) (*LogicalNot, error) {
	n := &LogicalNot{Base: prod.NewBase(parent, nil)}
	operand, err := BoolFactory(n, s, sch)
	if err != nil {
		return nil, err
	}
	n.operand = operand
	return n, nil
}

func (l *LogicalNot) Emit(w io.Writer) {
	fmt.Fprint(w, "not (")
	l.operand.Emit(w)
	fmt.Fprint(w, ")")
}
func (l *LogicalNot) Accept(v prod.Visitor) {
	l.operand.Accept(v)
	v.Visit(l)
}

// BoolLiteral is a truth-valued leaf used as the retry fallback once no
// richer bool_expr variant succeeds.
type BoolLiteral struct {
	prod.Base
	value bool
}

func newBoolLiteral(parent prod.Node, s *rng.Source) *BoolLiteral {
	return &BoolLiteral{Base: prod.NewBase(parent, nil), value: s.D6() > 3}
}

func (b *BoolLiteral) Emit(w io.Writer) {
	if b.value {
		fmt.Fprint(w, "true")
	} else {
		fmt.Fprint(w, "false")
	}
}
func (b *BoolLiteral) Accept(v prod.Visitor) { v.Visit(b) }
