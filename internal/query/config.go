// Package query implements the SELECT-statement grammar: table
// references, join conditions, FROM clauses, select lists, and the
// top-level query_spec/statement_factory, per spec.md §4.3. Grounded on
// original_source/grammar.cc's table_ref/join_cond/from_clause/
// select_list/query_spec factories, with the literal dice probabilities
// named in the spec preserved verbatim.
package query

// Config tunes the grammar's probabilistic choices. The zero value
// (DefaultConfig) reproduces the literal weights spec.md names.
type Config struct {
	// EnableExprJoinCond allows join_cond.Factory to produce an
	// ExprJoinCond (arbitrary bool_expr join condition) instead of only
	// SimpleJoinCond. Disabled by default: see DESIGN.md's Open Question
	// decision to keep the variant defined and reachable but off by
	// default, rather than deleting it.
	EnableExprJoinCond bool

	// JoinTypeWeights holds the two sequential "d6() < 4" draw
	// thresholds from original_source/grammar.cc's joined_table
	// constructor: threshold[0] selects inner vs. {left,right}, and
	// threshold[1] (consulted only when the first draw fails) selects
	// left vs. right. Both default to 4, giving {inner: 1/2, left: 1/4,
	// right: 1/4}.
	JoinTypeWeights [2]int

	// SingleColumnSelectList forces query_spec's select list to exactly
	// one item instead of select_list's usual geometric continuation.
	// Set by scalar subquery construction: a value_expr used in scalar
	// position requires a single-column result, or MySQL rejects it
	// with "Operand should contain 1 column(s)".
	SingleColumnSelectList bool
}

// DefaultConfig reproduces spec.md's literal probabilities.
var DefaultConfig = Config{JoinTypeWeights: [2]int{4, 4}}

func (c Config) weights() [2]int {
	if c.JoinTypeWeights == ([2]int{}) {
		return DefaultConfig.JoinTypeWeights
	}
	return c.JoinTypeWeights
}
