package mysql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntrospectBuildsTablesAndColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT DATABASE\\(\\)").
		WillReturnRows(sqlmock.NewRows([]string{"database()"}).AddRow("fuzzdb"))

	mock.ExpectQuery("FROM information_schema.tables").
		WillReturnRows(sqlmock.NewRows([]string{"table_name", "table_comment", "table_type"}).
			AddRow("t1", "", "BASE TABLE"))

	mock.ExpectQuery("FROM information_schema.columns").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "column_type"}).
			AddRow("a", "int").
			AddRow("b", "varchar(255)"))

	mock.ExpectQuery("FROM information_schema.statistics").
		WillReturnRows(sqlmock.NewRows([]string{"index_name", "non_unique", "columns"}).
			AddRow("PRIMARY", "0", "a"))

	intr := New()
	out, err := intr.Introspect(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, out.Tables, 1)

	tbl := out.Tables[0]
	assert.Equal(t, "t1", tbl.Name)
	assert.True(t, tbl.BaseTable)
	require.Len(t, tbl.Columns, 2)
	assert.Equal(t, "a", tbl.Columns[0].Name)
	require.Len(t, tbl.Indexes, 1)
	assert.True(t, tbl.Indexes[0].Unique)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDetectDialect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT VERSION\\(\\)").
		WillReturnRows(sqlmock.NewRows([]string{"version()"}).AddRow("10.11.2-MariaDB"))

	dialect, version, err := DetectDialect(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, "mariadb", string(dialect))
	assert.Contains(t, version, "MariaDB")

	require.NoError(t, mock.ExpectationsWereMet())
}
