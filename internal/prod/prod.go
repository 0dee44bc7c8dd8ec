// Package prod is the production framework every grammar node is built
// on: the Node/Visitor contract, the embeddable Base bookkeeping struct,
// and the retry-as-control-flow discipline factories use instead of
// panicking when a branch of the grammar dead-ends. Grounded on
// original_source/relmodel.hh's struct prod and original_source/log.cc's
// visitor dispatch.
package prod

import (
	"errors"
	"io"

	"github.com/trueeyu/sqlsmith/internal/scope"
)

// ErrProductionFailed is returned by Retry once a production has
// exhausted its own retry budget. It is an ordinary
// error, not a panic: callers walk back up the grammar and either retry
// a shallower alternative or, at the statement root, restart the whole
// statement.
var ErrProductionFailed = errors.New("prod: production failed after max retries")

// DefaultMaxRetries bounds how many times a single production may retry
// before it gives up and reports ErrProductionFailed.
const DefaultMaxRetries = 100

// Node is the capability every concrete grammar production implements.
type Node interface {
	Emit(w io.Writer)
	Accept(v Visitor)
	Retry() error
	Level() int
	Scope() *scope.Scope
}

// Visitor is routed over a Node tree in post-order (children before
// parent) by each concrete production's Accept method.
type Visitor interface {
	Visit(n Node)
}

// Base is embedded by every concrete production. It is not itself a
// Node — concrete types must still implement Emit and Accept — but it
// supplies Level, Scope, and the shared retry bookkeeping.
type Base struct {
	parent  Node
	level   int
	scope   *scope.Scope
	retries int
}

// NewBase constructs the shared bookkeeping for a production. parent may
// be nil only for a statement root, in which case ownScope must be
// non-nil; a non-nil parent must itself be addressable as a Node and
// supplies both level (parent's level + 1) and scope by default.
func NewBase(parent Node, ownScope *scope.Scope) Base {
	if parent == nil {
		if ownScope == nil {
			panic("prod: NewBase requires an explicit scope when parent is nil")
		}
		return Base{scope: ownScope}
	}
	s := ownScope
	if s == nil {
		s = parent.Scope()
	}
	return Base{parent: parent, level: parent.Level() + 1, scope: s}
}

// Level returns this production's depth in the grammar tree.
func (b *Base) Level() int { return b.level }

// Scope returns the lexical scope this production was built in.
func (b *Base) Scope() *scope.Scope { return b.scope }

// Parent returns the owning production, or nil at the statement root.
func (b *Base) Parent() Node { return b.parent }

// Retry records one failed attempt at this production, bumping every
// ancestor's diagnostic retry tally along the way, and reports
// ErrProductionFailed once the local attempt count exceeds
// DefaultMaxRetries. An ancestor separately exhausting its own budget is
// not reported here; the caller that owns that ancestor observes it on
// its own Retry call.
func (b *Base) Retry() error {
	b.retries++
	if b.parent != nil {
		_ = b.parent.Retry()
	}
	if b.retries > DefaultMaxRetries {
		return ErrProductionFailed
	}
	return nil
}

// Retries returns the number of failed attempts recorded locally,
// exposed for statistics collection.
func (b *Base) Retries() int { return b.retries }
