// Package catalog is the grammar-facing database catalog: tables,
// operators, and routines, all typed against internal/sqltype. It is
// read-only to the grammar core once built, matching spec.md's catalog
// model (original_source/relmodel.hh's table/op/routine, populated the
// way original_source/mysql.cc's schema_mysql constructor does).
package catalog

import "github.com/trueeyu/sqlsmith/internal/sqltype"

// Column is a single typed column of a Relation.
type Column struct {
	Name string
	Type *sqltype.Type
}

// Relation is anything with an ordered column list.
type Relation interface {
	Columns() []Column
}

// NamedRelation is a Relation that can be referenced by an identifier.
type NamedRelation interface {
	Relation
	Ident() string
}

// ColumnList is the straightforward Relation: an owned, ordered slice of
// columns. select_list's derived_table and table_subquery's exported
// relation both use it directly.
type ColumnList struct {
	Cols []Column
}

func (c *ColumnList) Columns() []Column { return c.Cols }

// AliasedRelation is a named relation that delegates its column list to
// an underlying relation: it owns the identifier, borrows the columns.
// Used for the FROM-list bindings of table aliases and subqueries.
type AliasedRelation struct {
	Alias string
	Rel   Relation
}

func NewAliasedRelation(alias string, rel Relation) *AliasedRelation {
	return &AliasedRelation{Alias: alias, Rel: rel}
}

func (a *AliasedRelation) Ident() string      { return a.Alias }
func (a *AliasedRelation) Columns() []Column  { return a.Rel.Columns() }

// Table is a named relation with a schema qualifier, discovered by
// introspection. Ident returns "schema.name".
type Table struct {
	Name       string
	SchemaName string
	Insertable bool
	BaseTable  bool
	Cols       []Column
}

func (t *Table) Ident() string     { return t.SchemaName + "." + t.Name }
func (t *Table) Columns() []Column { return t.Cols }

// Operator is an operator entry. The expression grammar emits every
// operator in binary form, "lhs op rhs"; a nil Left is not treated as
// unary (an operand of a randomly chosen type is generated for it).
type Operator struct {
	Name   string
	Left   *sqltype.Type
	Right  *sqltype.Type
	Result *sqltype.Type
}

// Routine is a scalar or aggregate function signature. Scalar routines
// and aggregates are kept in two disjoint slices on Schema, as spec.md
// requires.
type Routine struct {
	Schema  string
	Name    string
	Args    []*sqltype.Type
	Result  *sqltype.Type
}

func (r Routine) Ident() string {
	if r.Schema == "" {
		return r.Name
	}
	return r.Schema + "." + r.Name
}

// Schema is the full read-only catalog handle the grammar core consumes.
type Schema struct {
	Tables     []*Table
	Types      []*sqltype.Type
	Operators  []Operator
	Routines   []Routine
	Aggregates []Routine

	BoolType     *sqltype.Type
	IntType      *sqltype.Type
	DoubleType   *sqltype.Type
	VarcharType  *sqltype.Type
	InternalType *sqltype.Type
	ArrayType    *sqltype.Type
}

// OperatorsReturning returns every registered operator whose Result type
// is consistent with want.
func (s *Schema) OperatorsReturning(want *sqltype.Type) []Operator {
	var out []Operator
	for _, op := range s.Operators {
		if want == nil || want.Consistent(op.Result) {
			out = append(out, op)
		}
	}
	return out
}

// RoutinesReturning returns every scalar routine whose Result type is
// consistent with want.
func (s *Schema) RoutinesReturning(want *sqltype.Type) []Routine {
	return filterRoutines(s.Routines, want)
}

// AggregatesReturning returns every aggregate routine whose Result type
// is consistent with want.
func (s *Schema) AggregatesReturning(want *sqltype.Type) []Routine {
	return filterRoutines(s.Aggregates, want)
}

func filterRoutines(routines []Routine, want *sqltype.Type) []Routine {
	var out []Routine
	for _, r := range routines {
		if want == nil || want.Consistent(r.Result) {
			out = append(out, r)
		}
	}
	return out
}
