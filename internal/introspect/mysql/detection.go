package mysql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/trueeyu/sqlsmith/internal/introspect"
)

// DetectDialect inspects a live connection's version string to decide
// whether it is talking to MySQL, MariaDB, or TiDB, so the host can pick
// the matching introspect.Dialect without the caller knowing in advance.
func DetectDialect(ctx context.Context, db *sql.DB) (introspect.Dialect, string, error) {
	var version string
	if err := db.QueryRowContext(ctx, "SELECT VERSION()").Scan(&version); err != nil {
		return "", "", err
	}

	lower := strings.ToLower(version)
	switch {
	case strings.Contains(lower, "mariadb"):
		return introspect.DialectMariaDB, version, nil
	case strings.Contains(lower, "tidb"):
		return introspect.DialectTiDB, version, nil
	default:
		return introspect.DialectMySQL, version, nil
	}
}
