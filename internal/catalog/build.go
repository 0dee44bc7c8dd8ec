package catalog

import (
	"github.com/trueeyu/sqlsmith/internal/schema"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

// FromSchema converts a raw introspected schema.Database into a grammar-
// facing Schema: columns get their sqltype.Type looked up from reg, and
// the fixed operator/routine/aggregate tables are registered the way
// original_source/mysql.cc's schema_mysql constructor does with its
// BINOP/FUNC1/FUNC2/FUNC3/AGG macros.
func FromSchema(db *schema.Database, reg *sqltype.Registry) *Schema {
	s := &Schema{
		BoolType:     reg.Get("BOOLEAN"),
		IntType:      reg.Get("INTEGER"),
		DoubleType:   reg.Get("DOUBLE"),
		VarcharType:  reg.Get("VARCHAR"),
		InternalType: reg.Get("internal"),
		ArrayType:    reg.Get("ARRAY"),
	}
	s.Types = reg.All()

	for _, t := range db.Tables {
		ct := &Table{
			Name:       t.Name,
			SchemaName: db.Name,
			BaseTable:  t.BaseTable,
			Insertable: t.BaseTable,
		}
		for _, c := range t.Columns {
			ct.Cols = append(ct.Cols, Column{
				Name: c.Name,
				Type: sqltypeFor(c.Type, s, reg),
			})
		}
		s.Tables = append(s.Tables, ct)
	}

	s.registerOperators()
	s.registerRoutines()
	s.registerAggregates()
	return s
}

// sqltypeFor maps a raw introspected schema.DataType onto the catalog's
// sentinel sqltype handles, falling back to the registry for anything
// not one of the four base families the grammar core reasons about.
func sqltypeFor(dt schema.DataType, s *Schema, reg *sqltype.Registry) *sqltype.Type {
	switch dt {
	case schema.DataTypeBoolean:
		return s.BoolType
	case schema.DataTypeInt:
		return s.IntType
	case schema.DataTypeFloat:
		return s.DoubleType
	case schema.DataTypeString, schema.DataTypeDatetime, schema.DataTypeBinary:
		return s.VarcharType
	default:
		return reg.Get("internal")
	}
}

func (s *Schema) registerOperators() {
	b := s.BoolType
	i := s.IntType
	for _, name := range []string{"<", "<=", ">", ">=", "=", "<>"} {
		s.Operators = append(s.Operators, Operator{Name: name, Left: i, Right: i, Result: b})
	}
}

func (s *Schema) registerRoutines() {
	i, v, d := s.IntType, s.VarcharType, s.DoubleType
	unary := []struct {
		name         string
		result, arg  *sqltype.Type
	}{
		{"abs", i, i},
		{"hex", v, v},
		{"length", i, v},
		{"lower", v, v},
		{"ltrim", v, v},
		{"rtrim", v, v},
		{"trim", v, v},
		{"round", i, d},
		{"upper", v, v},
	}
	for _, f := range unary {
		s.Routines = append(s.Routines, Routine{Name: f.name, Result: f.result, Args: []*sqltype.Type{f.arg}})
	}

	s.Routines = append(s.Routines,
		Routine{Name: "instr", Result: i, Args: []*sqltype.Type{v, v}},
		Routine{Name: "substr", Result: v, Args: []*sqltype.Type{v, i}},
		Routine{Name: "substr", Result: v, Args: []*sqltype.Type{v, i, i}},
	)
}

func (s *Schema) registerAggregates() {
	i, d := s.IntType, s.DoubleType
	s.Aggregates = append(s.Aggregates,
		Routine{Name: "avg", Result: i, Args: []*sqltype.Type{i}},
		Routine{Name: "avg", Result: d, Args: []*sqltype.Type{d}},
		Routine{Name: "count", Result: i, Args: []*sqltype.Type{i}},
		Routine{Name: "max", Result: d, Args: []*sqltype.Type{d}},
		Routine{Name: "max", Result: i, Args: []*sqltype.Type{i}},
		Routine{Name: "sum", Result: d, Args: []*sqltype.Type{d}},
		Routine{Name: "sum", Result: i, Args: []*sqltype.Type{i}},
	)
}
