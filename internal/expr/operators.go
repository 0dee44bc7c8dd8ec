package expr

import (
	"fmt"
	"io"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

// BinaryOp is "<lhs> <op> <rhs>", driven by catalog.Schema.Operators.
type BinaryOp struct {
	prod.Base
	op       catalog.Operator
	lhs, rhs ValueExpr
}

func newBinaryOp(parent prod.Node, s *rng.Source, sch *catalog.Schema, required *sqltype.Type) (*BinaryOp, error) {
	candidates := sch.OperatorsReturning(required)
	op, err := rng.Pick(s, candidates)
	if err != nil {
		return nil, err
	}
	n := &BinaryOp{Base: prod.NewBase(parent, nil), op: op}
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

func (b *BinaryOp) Type() *sqltype.Type { return b.op.Result }
func (b *BinaryOp) Emit(w io.Writer) {
	fmt.Fprint(w, "(")
	b.lhs.Emit(w)
	fmt.Fprintf(w, " %s ", b.op.Name)
	b.rhs.Emit(w)
	fmt.Fprint(w, ")")
}
func (b *BinaryOp) Accept(v prod.Visitor) {
	b.lhs.Accept(v)
	b.rhs.Accept(v)
	v.Visit(b)
}
