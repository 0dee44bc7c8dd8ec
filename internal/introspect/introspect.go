// Package introspect contains the introspecter registry. An Introspecter
// reads a live database connection and returns a schema.Database describing
// the tables and columns it found, or an error if the connection/queries
// were unsuccessful.
package introspect

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/trueeyu/sqlsmith/internal/schema"
)

// Dialect identifies a supported SQL dialect for introspection purposes.
type Dialect string

const (
	DialectMySQL   Dialect = "mysql"
	DialectMariaDB Dialect = "mariadb"
	DialectTiDB    Dialect = "tidb"
)

type Introspecter interface {
	Introspect(ctx context.Context, db *sql.DB) (*schema.Database, error)
}

var (
	registry = make(map[Dialect]func() Introspecter)
	mu       sync.RWMutex
)

// Register associates a dialect with a constructor for its Introspecter.
// Called from the init() of dialect-specific packages (see
// internal/introspect/mysql).
func Register(dialect Dialect, fn func() Introspecter) {
	mu.Lock()
	defer mu.Unlock()
	registry[dialect] = fn
}

// NewIntrospecter looks up the registered constructor for dialect and
// returns a fresh Introspecter instance.
func NewIntrospecter(dialect Dialect) (Introspecter, error) {
	mu.RLock()
	fn, ok := registry[dialect]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unsupported dialect %v", dialect)
	}

	return fn(), nil
}
