package dut

import (
	"fmt"

	"github.com/pingcap/tidb/pkg/parser"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"
)

// Preflight parses a generated statement with the MySQL-dialect AST
// parser before it is ever sent to the DUT, catching a generator defect
// before it's misattributed to the device under test. Grounded on
// internal/apply's StatementAnalyzer, trimmed to the one thing this
// project needs from it: "does this parse as MySQL SQL at all".
type Preflight struct {
	parser *parser.Parser
}

// NewPreflight returns a ready-to-use preflight validator.
func NewPreflight() *Preflight {
	return &Preflight{parser: parser.New()}
}

// Check parses stmt and returns an error describing the parse failure,
// or nil if it's well-formed MySQL-dialect SQL.
func (p *Preflight) Check(stmt string) error {
	nodes, _, err := p.parser.Parse(stmt, "", "")
	if err != nil {
		return fmt.Errorf("dut: preflight parse failed: %w", err)
	}
	if len(nodes) != 1 {
		return fmt.Errorf("dut: preflight expected exactly one statement, got %d", len(nodes))
	}
	return nil
}
