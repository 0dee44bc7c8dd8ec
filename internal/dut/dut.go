package dut

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
)

// Outcome classifies a device-under-test's response to one statement.
type Outcome int

const (
	// OK means the statement executed without error.
	OK Outcome = iota
	// Syntax means the DUT rejected the statement as malformed — a
	// generator bug, not a DUT bug.
	Syntax
	// Timeout means the statement's context deadline was exceeded.
	Timeout
	// Broken means the connection itself is unusable and must be
	// reconnected before further statements can be submitted.
	Broken
	// Other is any error that doesn't fit the above, interesting enough
	// to report but not clearly attributable to either side.
	Other
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case Syntax:
		return "syntax"
	case Timeout:
		return "timeout"
	case Broken:
		return "broken"
	default:
		return "other"
	}
}

// syntaxErrorNumbers are the MySQL error numbers original_source/
// mysql.cc's dut_mysql::test treats as "the generator produced an
// invalid statement" rather than a DUT failure worth reporting loudly.
var syntaxErrorNumbers = map[uint16]bool{
	1064: true, // syntax error
	1054: true, // unknown column
	1247: true, // forward column reference
	1052: true, // ambiguous column
	1093: true, // target table specified in FROM for UPDATE
}

// Result is the outcome of submitting one statement, plus the
// underlying error (nil on OK) for logging.
type Result struct {
	Outcome Outcome
	Err     error
}

// DUT wraps a live connection to the device under test.
type DUT struct {
	db   *sql.DB
	conn ConnInfo
}

// Connect opens and pings a connection described by a "mysql://" URI.
func Connect(ctx context.Context, conninfo string) (*DUT, error) {
	info, err := ParseConnInfo(conninfo)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", info.DSN())
	if err != nil {
		return nil, fmt.Errorf("dut: failed to open connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("dut: failed to ping %s:%d: %w", info.Host, info.Port, err)
	}
	return &DUT{db: db, conn: info}, nil
}

// Close releases the underlying connection. Safe to call on a nil *DUT
// or an already-closed one.
func (d *DUT) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Execute submits stmt and classifies the response.
func (d *DUT) Execute(ctx context.Context, stmt string) Result {
	rows, err := d.db.QueryContext(ctx, stmt)
	if err == nil {
		_ = rows.Close()
		return Result{Outcome: OK}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Result{Outcome: Timeout, Err: err}
	}

	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		if syntaxErrorNumbers[mysqlErr.Number] {
			return Result{Outcome: Syntax, Err: err}
		}
		return Result{Outcome: Other, Err: err}
	}

	// Anything that isn't a typed MySQL protocol error (connection
	// reset, driver-level failure) is treated as the connection itself
	// being unusable.
	return Result{Outcome: Broken, Err: err}
}
