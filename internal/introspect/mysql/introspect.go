// Package mysql contains the introspecter implementation for MySQL,
// MariaDB, and TiDB, since all three speak the same wire protocol and
// information_schema surface. It uses the database/sql pool handed to it
// by the caller to populate a schema.Database.
package mysql

import (
	"context"
	"database/sql"

	"github.com/trueeyu/sqlsmith/internal/introspect"
	"github.com/trueeyu/sqlsmith/internal/schema"
)

func init() {
	introspect.Register(introspect.DialectMySQL, New)
	introspect.Register(introspect.DialectMariaDB, New)
	introspect.Register(introspect.DialectTiDB, New)
}

type introspecter struct{}

// New returns a fresh MySQL-family Introspecter.
func New() introspect.Introspecter {
	return &introspecter{}
}

// introspectCtx threads the live connection and context through the
// per-table/per-column query helpers without repeating both parameters on
// every call.
type introspectCtx struct {
	ctx context.Context
	db  *sql.DB
}

func (i *introspecter) Introspect(ctx context.Context, db *sql.DB) (*schema.Database, error) {
	var name string
	if err := db.QueryRowContext(ctx, "SELECT DATABASE()").Scan(&name); err != nil {
		return nil, err
	}

	out := &schema.Database{Name: name}
	ic := &introspectCtx{ctx: ctx, db: db}

	if err := introspectTables(ic, out); err != nil {
		return nil, err
	}

	return out, nil
}
