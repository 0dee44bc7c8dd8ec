package query

import (
	"io"

	"github.com/trueeyu/sqlsmith/internal/prod"
	"github.com/trueeyu/sqlsmith/internal/rng"
)

// FromClause builds exactly one top-level table_ref and folds its refs
// into the enclosing scope. Expansion to a comma-separated list of
// several top-level refs is a reserved extension point: the emitter
// already walks a slice.
type FromClause struct {
	prod.Base
	refs []TableRef
}

func newFromClause(parent prod.Node, s *rng.Source, cfg Config) (*FromClause, error) {
	n := &FromClause{Base: prod.NewBase(parent, nil)}
	ref, err := tableRefFactory(n, s, cfg)
	if err != nil {
		return nil, err
	}
	n.refs = []TableRef{ref}
	for _, r := range ref.Refs() {
		parent.Scope().BindRef(r)
	}
	return n, nil
}

func (f *FromClause) Emit(w io.Writer) {
	io.WriteString(w, "from ")
	for i, r := range f.refs {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		r.Emit(w)
	}
}
func (f *FromClause) Accept(v prod.Visitor) {
	for _, r := range f.refs {
		r.Accept(v)
	}
	v.Visit(f)
}
