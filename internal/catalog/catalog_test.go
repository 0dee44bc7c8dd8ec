package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueeyu/sqlsmith/internal/schema"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

func TestFromSchemaMapsColumnsAndRegistersOperators(t *testing.T) {
	db := &schema.Database{
		Name: "fuzzdb",
		Tables: []*schema.Table{
			{
				Name:      "orders",
				BaseTable: true,
				Columns: []*schema.Column{
					{Name: "id", Type: schema.DataTypeInt},
					{Name: "total", Type: schema.DataTypeFloat},
					{Name: "memo", Type: schema.DataTypeString},
				},
			},
		},
	}

	reg := sqltype.NewRegistry()
	cat := FromSchema(db, reg)

	require.Len(t, cat.Tables, 1)
	tbl := cat.Tables[0]
	assert.Equal(t, "fuzzdb.orders", tbl.Ident())
	require.Len(t, tbl.Cols, 3)
	assert.Same(t, cat.IntType, tbl.Cols[0].Type)
	assert.Same(t, cat.DoubleType, tbl.Cols[1].Type)
	assert.Same(t, cat.VarcharType, tbl.Cols[2].Type)

	eq := cat.OperatorsReturning(cat.BoolType)
	assert.NotEmpty(t, eq)

	sums := cat.AggregatesReturning(cat.IntType)
	assert.NotEmpty(t, sums)
}

func TestAliasedRelationDelegatesColumns(t *testing.T) {
	base := &ColumnList{Cols: []Column{{Name: "c1"}}}
	aliased := NewAliasedRelation("t", base)

	assert.Equal(t, "t", aliased.Ident())
	assert.Equal(t, base.Cols, aliased.Columns())
}
