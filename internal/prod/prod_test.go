package prod

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueeyu/sqlsmith/internal/catalog"
	"github.com/trueeyu/sqlsmith/internal/scope"
)

// leaf is a minimal Node used to exercise Base's bookkeeping.
type leaf struct {
	Base
}

func (l *leaf) Emit(w io.Writer)  {}
func (l *leaf) Accept(v Visitor)  { v.Visit(l) }

func newRootScope() *scope.Scope {
	return scope.NewRoot(&catalog.Schema{})
}

func TestNewBaseRootRequiresScope(t *testing.T) {
	assert.Panics(t, func() {
		NewBase(nil, nil)
	})
}

func TestNewBaseChildInheritsLevelAndScope(t *testing.T) {
	s := newRootScope()
	root := &leaf{Base: NewBase(nil, s)}
	child := &leaf{Base: NewBase(root, nil)}

	assert.Equal(t, 0, root.Level())
	assert.Equal(t, 1, child.Level())
	assert.Same(t, s, child.Scope())
}

func TestRetryExhaustsAfterMaxRetries(t *testing.T) {
	s := newRootScope()
	n := &leaf{Base: NewBase(nil, s)}

	var err error
	for i := 0; i <= DefaultMaxRetries; i++ {
		err = n.Retry()
	}
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProductionFailed))
}

func TestRetryPropagatesToParent(t *testing.T) {
	s := newRootScope()
	root := &leaf{Base: NewBase(nil, s)}
	child := &leaf{Base: NewBase(root, nil)}

	_ = child.Retry()
	_ = child.Retry()

	assert.Equal(t, 2, child.Retries())
	assert.Equal(t, 2, root.Retries())
}

type countingVisitor struct{ n int }

func (c *countingVisitor) Visit(Node) { c.n++ }

func TestAcceptRoutesToVisitor(t *testing.T) {
	s := newRootScope()
	n := &leaf{Base: NewBase(nil, s)}
	v := &countingVisitor{}
	n.Accept(v)
	assert.Equal(t, 1, v.n)
}
