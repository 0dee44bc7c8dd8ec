// Package scope is the lexical scope the grammar core threads through
// every production: which relations are visible, which column
// references have been bound, and the shared per-statement identifier
// counter. Grounded on original_source/relmodel.hh's struct scope.
package scope

import (
	"fmt"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

// ColumnRef is a resolved reference to a column of a relation visible in
// some scope, e.g. "orders.total".
type ColumnRef struct {
	Relation catalog.NamedRelation
	Column   catalog.Column
}

// Reference renders the qualified "relation.column" form used in emitted
// SQL text.
func (c ColumnRef) Reference() string {
	return c.Relation.Ident() + "." + c.Column.Name
}

// StmtSeq is the shared, mutable per-statement identifier counter. It is
// held behind a pointer and copied by reference into every child scope,
// so a synthesized alias is unique across an entire statement tree no
// matter how deeply nested the production that requests it is.
type StmtSeq struct {
	counts map[string]uint32
}

// NewStmtSeq returns an empty counter, used once per top-level statement.
func NewStmtSeq() *StmtSeq {
	return &StmtSeq{counts: make(map[string]uint32)}
}

// Next returns the next <prefix>_<n> identifier for prefix, starting at 1.
func (s *StmtSeq) Next(prefix string) string {
	s.counts[prefix]++
	return fmt.Sprintf("%s_%d", prefix, s.counts[prefix])
}

// Scope is the lexical environment visible to a production: the
// relations it may reference, the catalog it was built from, and the
// shared statement-wide identifier sequence. Child scopes are built by
// copying the parent's table and ref slices and sharing its Schema and
// Seq pointers, as original_source/relmodel.hh's scope(scope *parent)
// constructor does, so appends in the child never mutate the parent's
// view.
type Scope struct {
	Parent *Scope
	Tables []catalog.NamedRelation
	Refs   []catalog.NamedRelation
	Schema *catalog.Schema
	Seq    *StmtSeq
}

// NewRoot returns the top-level scope for one statement: an empty table
// and ref list, a fresh identifier sequence, bound to schema.
func NewRoot(sch *catalog.Schema) *Scope {
	return &Scope{Schema: sch, Seq: NewStmtSeq()}
}

// NewStmt resets the statement-wide counter and returns a fresh root
// scope for the next top-level statement, reusing the same catalog.
func NewStmt(sch *catalog.Schema) *Scope {
	return NewRoot(sch)
}

// NewChild returns a scope nested under s, inheriting copies of its visible
// tables and refs — appends made in the child are not visible to s or
// siblings.
func (s *Scope) NewChild() *Scope {
	return &Scope{
		Parent: s,
		Tables: append([]catalog.NamedRelation(nil), s.Tables...),
		Refs:   append([]catalog.NamedRelation(nil), s.Refs...),
		Schema: s.Schema,
		Seq:    s.Seq,
	}
}

// StmtUID returns the next unique identifier for prefix within this
// scope's statement.
func (s *Scope) StmtUID(prefix string) string {
	return s.Seq.Next(prefix)
}

// BindTable makes rel available for FROM-list selection (table_ref
// candidates), mirroring original_source/relmodel.hh's scope::tables.
// It does not make rel's columns resolvable — use BindRef for that.
func (s *Scope) BindTable(rel catalog.NamedRelation) {
	s.Tables = append(s.Tables, rel)
}

// BindRef makes rel visible for column resolution within this scope
// (scope::refs), without adding it as a FROM-list candidate. This is
// what from_clause and join conditions use to bring a bound relation's
// columns into scope for the rest of the statement.
func (s *Scope) BindRef(rel catalog.NamedRelation) {
	s.Refs = append(s.Refs, rel)
}

// FillScope binds every table (base tables and views) in the catalog's
// schema into s,
// making the whole database available for FROM-list selection.
// Lives on Scope rather than catalog.Schema (as originally sketched) to
// avoid a catalog<->scope import cycle; see DESIGN.md.
func (s *Scope) FillScope() {
	for _, t := range s.Schema.Tables {
		s.BindTable(t)
	}
}

// RefsOfType returns every ColumnRef visible in this scope whose column
// type is consistent with t (t == nil matches any column), mirroring
// original_source/relmodel.hh's scope::refs_of_type.
func (s *Scope) RefsOfType(t *sqltype.Type) []ColumnRef {
	var out []ColumnRef
	for _, rel := range s.Refs {
		for _, col := range rel.Columns() {
			if t == nil || t.Consistent(col.Type) {
				out = append(out, ColumnRef{Relation: rel, Column: col})
			}
		}
	}
	return out
}
