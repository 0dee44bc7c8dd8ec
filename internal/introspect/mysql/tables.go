package mysql

import (
	"github.com/trueeyu/sqlsmith/internal/schema"
)

func introspectTables(ic *introspectCtx, db *schema.Database) error {
	rows, err := ic.db.QueryContext(ic.ctx, `
		SELECT table_name, table_comment, table_type
		FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type IN ('BASE TABLE', 'VIEW')
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	var tables []*schema.Table
	for rows.Next() {
		var name, comment, tableType string
		if err := rows.Scan(&name, &comment, &tableType); err != nil {
			return err
		}

		tables = append(tables, &schema.Table{
			Name:      name,
			Schema:    db.Name,
			Comment:   comment,
			BaseTable: tableType == "BASE TABLE",
		})
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, t := range tables {
		if err := introspectColumns(ic, t); err != nil {
			return err
		}
		if err := introspectIndexes(ic, t); err != nil {
			return err
		}
		db.Tables = append(db.Tables, t)
	}

	return nil
}
