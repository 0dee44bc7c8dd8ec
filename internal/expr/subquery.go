package expr

import (
	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

// ScalarSubqueryBuilder constructs a "(SELECT ...)" ValueExpr wrapping a
// nested, single-column query restricted to required. The query package
// registers its implementation in RegisterScalarSubquery at init time;
// expr never imports query directly (query already imports expr for its
// select list / WHERE clause, so a direct import back would cycle). This
// mirrors the same registry-of-constructors shape internal/introspect
// uses to keep per-dialect introspecters decoupled from their registry.
type ScalarSubqueryBuilder func(parent prod.Node, s *rng.Source, sch *catalog.Schema, required *sqltype.Type) (ValueExpr, error)

var scalarSubqueryBuilder ScalarSubqueryBuilder

// RegisterScalarSubquery installs the query package's nested query_spec
// builder so value_expr.Factory can offer ScalarSubquery as a variant.
func RegisterScalarSubquery(b ScalarSubqueryBuilder) {
	scalarSubqueryBuilder = b
}
