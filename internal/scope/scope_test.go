package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

func testSchema() *catalog.Schema {
	reg := sqltype.NewRegistry()
	intType := reg.Get("INTEGER")
	varcharType := reg.Get("VARCHAR")
	return &catalog.Schema{
		IntType:     intType,
		VarcharType: varcharType,
		Tables: []*catalog.Table{
			{
				Name:       "orders",
				SchemaName: "fuzzdb",
				Cols: []catalog.Column{
					{Name: "id", Type: intType},
					{Name: "memo", Type: varcharType},
				},
			},
		},
	}
}

func TestStmtSeqProducesUniqueIdentifiers(t *testing.T) {
	seq := NewStmtSeq()
	assert.Equal(t, "t_1", seq.Next("t"))
	assert.Equal(t, "t_2", seq.Next("t"))
	assert.Equal(t, "c_1", seq.Next("c"))
}

func TestChildScopeDoesNotMutateParent(t *testing.T) {
	root := NewRoot(testSchema())
	root.FillScope()

	child := root.NewChild()
	child.BindTable(catalog.NewAliasedRelation("sub", &catalog.ColumnList{}))

	assert.Len(t, root.Tables, 1)
	assert.Len(t, child.Tables, 2)
}

func TestBindTableDoesNotMakeColumnsResolvable(t *testing.T) {
	root := NewRoot(testSchema())
	root.FillScope()

	assert.Len(t, root.Tables, 1)
	assert.Empty(t, root.RefsOfType(nil))
}

func TestRefsOfTypeFiltersByConsistency(t *testing.T) {
	sch := testSchema()
	root := NewRoot(sch)
	root.FillScope()
	root.BindRef(sch.Tables[0])

	intRefs := root.RefsOfType(sch.IntType)
	assert.Len(t, intRefs, 1)
	assert.Equal(t, "fuzzdb.orders.id", intRefs[0].Reference())

	allRefs := root.RefsOfType(nil)
	assert.Len(t, allRefs, 2)
}

func TestSharedSeqAcrossChildren(t *testing.T) {
	root := NewRoot(testSchema())
	a := root.NewChild()
	b := root.NewChild()

	assert.Equal(t, "x_1", a.StmtUID("x"))
	assert.Equal(t, "x_2", b.StmtUID("x"))
}
