package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDataType(t *testing.T) {
	cases := []struct {
		raw  string
		want DataType
	}{
		{"INT", DataTypeInt},
		{"BIGINT UNSIGNED", DataTypeInt},
		{"tinyint(1)", DataTypeBoolean},
		{"TINYINT", DataTypeInt},
		{"varchar(255)", DataTypeString},
		{"TEXT", DataTypeString},
		{"double", DataTypeFloat},
		{"decimal(10,2)", DataTypeFloat},
		{"datetime", DataTypeDatetime},
		{"timestamp", DataTypeDatetime},
		{"blob", DataTypeBinary},
		{"json", DataTypeUnknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeDataType(c.raw), "raw type %q", c.raw)
	}
}

func TestFindTableAndColumn(t *testing.T) {
	db := &Database{
		Tables: []*Table{
			{Name: "t1", Columns: []*Column{{Name: "a", Type: DataTypeInt}}},
		},
	}

	tbl := db.FindTable("t1")
	if assert.NotNil(t, tbl) {
		col := tbl.FindColumn("a")
		if assert.NotNil(t, col) {
			assert.Equal(t, DataTypeInt, col.Type)
		}
		assert.Nil(t, tbl.FindColumn("missing"))
	}

	assert.Nil(t, db.FindTable("missing"))
	assert.Nil(t, (*Database)(nil).FindTable("t1"))
}
