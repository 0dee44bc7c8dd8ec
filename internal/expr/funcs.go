package expr

import (
	"fmt"
	"io"
	"strings"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

// FuncCall is "name(arg0, arg1, ...)", driven by catalog.Schema.Routines.
type FuncCall struct {
	prod.Base
	routine catalog.Routine
	args    []ValueExpr
}

func newFuncCall(parent prod.Node, s *rng.Source, sch *catalog.Schema, required *sqltype.Type) (*FuncCall, error) {
	return newRoutineCall(parent, s, sch, sch.RoutinesReturning(required))
}

// AggCall is a call to an aggregate routine, e.g. "sum(orders.total)".
type AggCall struct {
	prod.Base
	routine catalog.Routine
	args    []ValueExpr
}

func newAggCall(parent prod.Node, s *rng.Source, sch *catalog.Schema, required *sqltype.Type) (*AggCall, error) {
	fc, err := newRoutineCall(parent, s, sch, sch.AggregatesReturning(required))
	if err != nil {
		return nil, err
	}
	return &AggCall{Base: fc.Base, routine: fc.routine, args: fc.args}, nil
}

func newRoutineCall(parent prod.Node, s *rng.Source, sch *catalog.Schema, candidates []catalog.Routine) (*FuncCall, error) {
	routine, err := rng.Pick(s, candidates)
	if err != nil {
		return nil, err
	}
	n := &FuncCall{Base: prod.NewBase(parent, nil), routine: routine}
	for _, argType := range routine.Args {
		arg, err := Factory(n, s, sch, argType)
		if err != nil {
			return nil, err
		}
		n.args = append(n.args, arg)
	}
	return n, nil
}

func (f *FuncCall) Type() *sqltype.Type { return f.routine.Result }
func (f *FuncCall) Emit(w io.Writer)    { emitCall(w, f.routine.Name, f.args) }
func (f *FuncCall) Accept(v prod.Visitor) {
	for _, a := range f.args {
		a.Accept(v)
	}
	v.Visit(f)
}

func (a *AggCall) Type() *sqltype.Type { return a.routine.Result }
func (a *AggCall) Emit(w io.Writer)    { emitCall(w, a.routine.Name, a.args) }
func (a *AggCall) Accept(v prod.Visitor) {
	for _, arg := range a.args {
		arg.Accept(v)
	}
	v.Visit(a)
}

func emitCall(w io.Writer, name string, args []ValueExpr) {
	parts := make([]string, len(args))
	for i, a := range args {
		var sb strings.Builder
		a.Emit(&sb)
		parts[i] = sb.String()
	}
	fmt.Fprintf(w, "%s(%s)", name, strings.Join(parts, ", "))
}
