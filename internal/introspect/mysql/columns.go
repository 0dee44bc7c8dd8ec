package mysql

import (
	"database/sql"

	"github.com/trueeyu/sqlsmith/internal/schema"
)

func introspectColumns(ic *introspectCtx, t *schema.Table) error {
	rows, err := ic.db.QueryContext(ic.ctx, `
		SELECT c.column_name, c.column_type
		FROM information_schema.columns c
		WHERE c.table_schema = DATABASE() AND c.table_name = ?
		ORDER BY c.ordinal_position
	`, t.Name)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name, colType sql.NullString
		if err := rows.Scan(&name, &colType); err != nil {
			return err
		}

		t.Columns = append(t.Columns, &schema.Column{
			Name:    name.String,
			RawType: colType.String,
			Type:    schema.NormalizeDataType(colType.String),
		})
	}

	return rows.Err()
}
