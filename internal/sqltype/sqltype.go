// Package sqltype is the process-wide type registry. A Type is a named
// descriptor; the Consistent relation decides whether a value of one type
// may occupy a slot demanding another, which is how generic pseudo-types
// widen to concrete ones (mirrors original_source/relmodel.hh's
// sqltype::consistent).
package sqltype

import "sync"

// Type is a named SQL type descriptor.
type Type struct {
	Name string

	// consistent overrides the default equality-based consistency check.
	// Left nil for ordinary concrete types.
	consistent func(rvalue *Type) bool
}

// Consistent reports whether a value of type rvalue may occupy a slot
// declared as t. The default relation is descriptor identity; types
// constructed with NewGeneric override it to additionally accept any
// concrete type in their family.
//
// There must be no cycles in the consistency graph: t.Consistent(r) and
// r.Consistent(t) both holding for distinct t, r would make "the required
// type" ambiguous for callers resolving in the direction of more concrete
// types.
func (t *Type) Consistent(rvalue *Type) bool {
	if t == nil || rvalue == nil {
		return false
	}
	if t == rvalue {
		return true
	}
	if t.consistent != nil {
		return t.consistent(rvalue)
	}
	return false
}

// New returns a plain concrete type whose only consistent value is itself.
func New(name string) *Type {
	return &Type{Name: name}
}

// NewGeneric returns a pseudo-type consistent with itself and with any
// type for which accepts returns true, e.g. a numeric supertype accepting
// both INTEGER and DOUBLE.
func NewGeneric(name string, accepts func(rvalue *Type) bool) *Type {
	return &Type{Name: name, consistent: accepts}
}

// Registry is a process-wide mapping from type name to descriptor.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Get returns the registered type named name, registering a fresh plain
// Type on first use — mirroring sqltype::get's lazily-populated typemap.
func (r *Registry) Get(name string) *Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.types[name]; ok {
		return t
	}
	t := New(name)
	r.types[name] = t
	return t
}

// Put registers an explicit Type (typically one built with NewGeneric)
// under its own Name, overwriting any prior registration.
func (r *Registry) Put(t *Type) *Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[t.Name] = t
	return t
}

// All returns every type currently registered, in no particular order.
func (r *Registry) All() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	return out
}

// Default is the process-wide registry pre-populated with the base types
// the core grammar always assumes exist, mirroring original_source/
// mysql.cc's BOOLEAN/INTEGER/DOUBLE/VARCHAR/internal/ARRAY set.
var Default = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Get("BOOLEAN")
	r.Get("INTEGER")
	r.Get("DOUBLE")
	r.Get("VARCHAR")
	r.Get("internal")
	r.Get("ARRAY")
	return r
}
