package astdump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/query"
	"github.com/trueeyu/sqlsmith/internal/rng"
	"github.com/trueeyu/sqlsmith/internal/schema"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

func TestDumpProducesValidGraphML(t *testing.T) {
	db := &schema.Database{
		Name: "fuzzdb",
		Tables: []*schema.Table{{
			Name:      "orders",
			BaseTable: true,
			Columns:   []*schema.Column{{Name: "id", Type: schema.DataTypeInt}},
		}},
	}
	sch := catalog.FromSchema(db, sqltype.NewRegistry())
	node, err := query.StatementFactory(sch, rng.New(4), query.DefaultConfig)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Dump(&sb, node))

	out := sb.String()
	assert.Contains(t, out, "<graphml>")
	assert.Contains(t, out, "<node ")
}
