package expr

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
	"github.com/trueeyu/sqlsmith/internal/schema"
	"github.com/trueeyu/sqlsmith/internal/scope"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

// testRoot is a minimal prod.Node used as a statement root in tests.
type testRoot struct {
	prod.Base
}

func (r *testRoot) Emit(io.Writer)       {}
func (r *testRoot) Accept(prod.Visitor)  {}

func newTestRoot(s *scope.Scope) *testRoot {
	return &testRoot{Base: prod.NewBase(nil, s)}
}

func testCatalog() *catalog.Schema {
	db := &schema.Database{
		Name: "fuzzdb",
		Tables: []*schema.Table{{
			Name:      "orders",
			BaseTable: true,
			Columns: []*schema.Column{
				{Name: "id", Type: schema.DataTypeInt},
				{Name: "total", Type: schema.DataTypeFloat},
				{Name: "memo", Type: schema.DataTypeString},
			},
		}},
	}
	return catalog.FromSchema(db, sqltype.NewRegistry())
}

func testRootScope(sch *catalog.Schema) *scope.Scope {
	s := scope.NewRoot(sch)
	s.FillScope()
	return s
}

func TestFactoryProducesConsistentlyTypedExpr(t *testing.T) {
	sch := testCatalog()
	root := newTestRoot(testRootScope(sch))
	s := rng.New(5)

	e, err := Factory(root, s, sch, sch.IntType)
	require.NoError(t, err)
	assert.True(t, sch.IntType.Consistent(e.Type()))

	var sb strings.Builder
	e.Emit(&sb)
	assert.NotEmpty(t, sb.String())
}

func TestFactoryDegradesToConstantWhenNoColumns(t *testing.T) {
	sch := &catalog.Schema{IntType: sqltype.New("INTEGER")}
	root := newTestRoot(scope.NewRoot(sch))
	s := rng.New(1)

	e, err := Factory(root, s, sch, sch.IntType)
	require.NoError(t, err)
	_, isConstant := e.(*Constant)
	assert.True(t, isConstant)
}

func TestBoolFactoryProducesBooleanExpr(t *testing.T) {
	sch := testCatalog()
	root := newTestRoot(testRootScope(sch))
	s := rng.New(9)

	b, err := BoolFactory(root, s, sch)
	require.NoError(t, err)

	var sb strings.Builder
	b.Emit(&sb)
	assert.NotEmpty(t, sb.String())
}

func TestRegisterScalarSubqueryIsUsedByFactory(t *testing.T) {
	sch := testCatalog()
	root := newTestRoot(testRootScope(sch))
	s := rng.New(2)

	called := false
	RegisterScalarSubquery(func(parent prod.Node, s *rng.Source, sch *catalog.Schema, required *sqltype.Type) (ValueExpr, error) {
		called = true
		return newConstant(parent, s, sch, required), nil
	})
	defer RegisterScalarSubquery(nil)

	for i := 0; i < 200 && !called; i++ {
		_, _ = Factory(root, s, sch, sch.IntType)
	}
	assert.True(t, called, "expected ScalarSubquery builder to be exercised at least once across many draws")
}
