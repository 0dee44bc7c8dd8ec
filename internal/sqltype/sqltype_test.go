package sqltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsistentIdentity(t *testing.T) {
	intType := New("INTEGER")
	other := New("INTEGER")

	assert.True(t, intType.Consistent(intType))
	assert.False(t, intType.Consistent(other), "distinct descriptors with the same name are not consistent")
}

func TestConsistentGenericWidening(t *testing.T) {
	intType := New("INTEGER")
	doubleType := New("DOUBLE")
	numeric := NewGeneric("anynumeric", func(r *Type) bool {
		return r == intType || r == doubleType
	})

	assert.True(t, numeric.Consistent(intType))
	assert.True(t, numeric.Consistent(doubleType))
	assert.True(t, numeric.Consistent(numeric))
	assert.False(t, intType.Consistent(numeric), "concrete types do not widen to generics")
}

func TestRegistryGetIsStable(t *testing.T) {
	r := NewRegistry()
	a := r.Get("INTEGER")
	b := r.Get("INTEGER")
	assert.Same(t, a, b)
	assert.Len(t, r.All(), 1)
}

func TestDefaultRegistryHasBaseTypes(t *testing.T) {
	for _, name := range []string{"BOOLEAN", "INTEGER", "DOUBLE", "VARCHAR", "internal", "ARRAY"} {
		assert.Equal(t, name, Default.Get(name).Name)
	}
}
