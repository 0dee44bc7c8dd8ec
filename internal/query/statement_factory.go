package query

import (
	"errors"
	"io"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/expr"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
	"github.com/trueeyu/sqlsmith/internal/scope"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

func init() {
	// Wire value_expr's ScalarSubquery variant to query_spec without
	// expr importing this package back (query already imports expr for
	// the select list and WHERE clause).
	expr.RegisterScalarSubquery(scalarSubqueryBuilder)
}

func scalarSubqueryBuilder(parent prod.Node, s *rng.Source, sch *catalog.Schema, required *sqltype.Type) (expr.ValueExpr, error) {
	inner := parent.Scope().NewChild()
	cfg := DefaultConfig
	cfg.SingleColumnSelectList = true
	q, err := newQuerySpec(parent, s, cfg, inner)
	if err != nil {
		return nil, err
	}
	cols := q.DerivedTable().Columns()
	if len(cols) != 1 {
		return nil, errors.New("query: scalar subquery must produce exactly one column")
	}
	// The scalar subquery's static type is whatever its single exported
	// column resolved to; callers filter by consistency, same as any
	// other value_expr variant.
	if required != nil && !required.Consistent(cols[0].Type) {
		return nil, errors.New("query: scalar subquery column type mismatch")
	}
	return &scalarSubquery{QuerySpec: q, colType: cols[0].Type}, nil
}

// scalarSubquery adapts a single-column QuerySpec to expr.ValueExpr by
// emitting it parenthesized and reporting its exported column's type.
type scalarSubquery struct {
	*QuerySpec
	colType *sqltype.Type
}

func (s *scalarSubquery) Type() *sqltype.Type { return s.colType }

func (s *scalarSubquery) Emit(w io.Writer) {
	io.WriteString(w, "(")
	s.QuerySpec.Emit(w)
	io.WriteString(w, ")")
}

// StatementFactory resets the per-statement identifier counters and
// builds one top-level QuerySpec with no parent, restarting the entire
// statement whenever a production failure propagates unrecovered to the
// root, per spec.md §4.3.10.
func StatementFactory(sch *catalog.Schema, s *rng.Source, cfg Config) (prod.Node, error) {
	for {
		root := scope.NewStmt(sch)
		root.FillScope()

		q, err := newQuerySpec(nil, s, cfg, root)
		if err != nil {
			if errors.Is(err, prod.ErrProductionFailed) {
				continue
			}
			return nil, err
		}
		return q, nil
	}
}
