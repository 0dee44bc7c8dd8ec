package expr

import (
	"fmt"
	"io"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

// CaseExpr is "CASE WHEN <bool_expr> THEN <value_expr> ELSE <value_expr> END".
// Its static type is that of the THEN branch.
type CaseExpr struct {
	prod.Base
	cond       BoolExpr
	then, els3 ValueExpr
}

func newCaseExpr(parent prod.Node, s *rng.Source, sch *catalog.Schema, required *sqltype.Type) (*CaseExpr, error) {
	// Without a boolean-returning operator the condition could only be
	// built from literals; fail so Factory degrades to a Constant on such
	// a catalog.
	if len(sch.OperatorsReturning(sch.BoolType)) == 0 {
		return nil, fmt.Errorf("expr: case_expr: no boolean-returning operator in catalog")
	}
	n := &CaseExpr{Base: prod.NewBase(parent, nil)}

	cond, err := BoolFactory(n, s, sch)
	if err != nil {
		return nil, err
	}
	then, err := Factory(n, s, sch, required)
	if err != nil {
		return nil, err
	}
	els3, err := Factory(n, s, sch, then.Type())
	if err != nil {
		return nil, err
	}
	n.cond, n.then, n.els3 = cond, then, els3
	return n, nil
}

func (c *CaseExpr) Type() *sqltype.Type { return c.then.Type() }
func (c *CaseExpr) Emit(w io.Writer) {
	fmt.Fprint(w, "case when ")
	c.cond.Emit(w)
	fmt.Fprint(w, " then ")
	c.then.Emit(w)
	fmt.Fprint(w, " else ")
	c.els3.Emit(w)
	fmt.Fprint(w, " end")
}
func (c *CaseExpr) Accept(v prod.Visitor) {
	c.cond.Accept(v)
	c.then.Accept(v)
	c.els3.Accept(v)
	v.Visit(c)
}
