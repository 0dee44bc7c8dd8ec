package mysql

import (
	"database/sql"
	"strings"

	"github.com/trueeyu/sqlsmith/internal/schema"
)

func introspectIndexes(ic *introspectCtx, t *schema.Table) error {
	rows, err := ic.db.QueryContext(ic.ctx, `
		SELECT
			i.index_name,
			i.non_unique,
			GROUP_CONCAT(c.column_name ORDER BY c.seq_in_index SEPARATOR ', ')
		FROM information_schema.statistics i
		JOIN information_schema.statistics c
			ON i.table_schema = c.table_schema
			AND i.table_name = c.table_name
			AND i.index_name = c.index_name
		WHERE i.table_schema = DATABASE() AND i.table_name = ?
		GROUP BY i.index_name, i.non_unique
	`, t.Name)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var indexName, nonUnique, columns sql.NullString
		if err := rows.Scan(&indexName, &nonUnique, &columns); err != nil {
			return err
		}

		idx := &schema.Index{
			Name:   indexName.String,
			Unique: nonUnique.String == "0",
		}
		idx.Columns = strings.Split(columns.String, ", ")

		t.Indexes = append(t.Indexes, idx)
	}

	return rows.Err()
}
