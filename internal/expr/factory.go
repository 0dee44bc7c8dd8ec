package expr

import (
	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
	"github.com/trueeyu/sqlsmith/internal/sqltype"
)

// variantBuilder attempts to construct one ValueExpr variant, returning
// a recoverable error (never a panic) on failure so Factory can try the
// next candidate.
type variantBuilder func(parent prod.Node, s *rng.Source, sch *catalog.Schema, required *sqltype.Type) (ValueExpr, error)

// Factory produces a ValueExpr whose Type() is consistent with required
// (nil means "pick a type from the catalog"). It retries across variants
// the same way table_ref::factory damps toward leaves as level grows:
// deeper productions increasingly favor Constant/ColumnRef, and the
// retry harness degrades all the way to Constant when the catalog
// offers nothing else.
func Factory(parent prod.Node, s *rng.Source, sch *catalog.Schema, required *sqltype.Type) (ValueExpr, error) {
	want := required
	if want == nil {
		if t, err := rng.Pick(s, sch.Types); err == nil {
			want = t
		} else {
			want = sch.IntType
		}
	}

	level := parent.Level()
	variants := leafBiasedVariants(s, level)

	for attempt := 0; attempt < prod.DefaultMaxRetries; attempt++ {
		build, err := rng.Pick(s, variants)
		if err != nil {
			break
		}
		node, err := build(parent, s, sch, want)
		if err == nil {
			return node, nil
		}
	}

	// Every richer variant failed (or was never viable): fall back to a
	// literal, which always succeeds.
	return newConstant(parent, s, sch, want), nil
}

// leafBiasedVariants returns the candidate value_expr builders for this
// level, weighting toward ColumnRef/Constant as depth increases so
// recursive productions terminate, mirroring table_ref::factory's
// level-conditional damping.
func leafBiasedVariants(s *rng.Source, level int) []variantBuilder {
	leaf := []variantBuilder{
		func(p prod.Node, s *rng.Source, sch *catalog.Schema, req *sqltype.Type) (ValueExpr, error) {
			return newColumnRef(p, s, req)
		},
		func(p prod.Node, s *rng.Source, sch *catalog.Schema, req *sqltype.Type) (ValueExpr, error) {
			return newConstant(p, s, sch, req), nil
		},
	}
	if level >= 3+s.D6() {
		return leaf
	}

	rich := []variantBuilder{
		func(p prod.Node, s *rng.Source, sch *catalog.Schema, req *sqltype.Type) (ValueExpr, error) {
			return newBinaryOp(p, s, sch, req)
		},
		func(p prod.Node, s *rng.Source, sch *catalog.Schema, req *sqltype.Type) (ValueExpr, error) {
			return newFuncCall(p, s, sch, req)
		},
		func(p prod.Node, s *rng.Source, sch *catalog.Schema, req *sqltype.Type) (ValueExpr, error) {
			return newAggCall(p, s, sch, req)
		},
		func(p prod.Node, s *rng.Source, sch *catalog.Schema, req *sqltype.Type) (ValueExpr, error) {
			return newCaseExpr(p, s, sch, req)
		},
	}
	if scalarSubqueryBuilder != nil {
		rich = append(rich, func(p prod.Node, s *rng.Source, sch *catalog.Schema, req *sqltype.Type) (ValueExpr, error) {
			return scalarSubqueryBuilder(p, s, sch, req)
		})
	}
	return append(leaf, rich...)
}

// boolVariantBuilder mirrors variantBuilder for the bool_expr family.
type boolVariantBuilder func(parent prod.Node, s *rng.Source, sch *catalog.Schema) (BoolExpr, error)

// BoolFactory produces a BOOLEAN-typed production, retrying across
// variants and degrading to BoolLiteral when nothing richer succeeds.
func BoolFactory(parent prod.Node, s *rng.Source, sch *catalog.Schema) (BoolExpr, error) {
	level := parent.Level()
	variants := []boolVariantBuilder{
		func(p prod.Node, s *rng.Source, sch *catalog.Schema) (BoolExpr, error) {
			return newComparison(p, s, sch)
		},
	}
	if level < 3+s.D6() {
		variants = append(variants,
			func(p prod.Node, s *rng.Source, sch *catalog.Schema) (BoolExpr, error) {
				return newLogicalAnd(p, s, sch)
			},
			func(p prod.Node, s *rng.Source, sch *catalog.Schema) (BoolExpr, error) {
				return newLogicalOr(p, s, sch)
			},
			func(p prod.Node, s *rng.Source, sch *catalog.Schema) (BoolExpr, error) {
				return newLogicalNot(p, s, sch)
			},
		)
	}

	for attempt := 0; attempt < prod.DefaultMaxRetries; attempt++ {
		build, err := rng.Pick(s, variants)
		if err != nil {
			break
		}
		node, err := build(parent, s, sch)
		if err == nil {
			return node, nil
		}
	}
	return newBoolLiteral(parent, s), nil
}
