package item

import (
	"sync"

	"github.com/reoring/mojangson/nbt"
)

// Handler contributes custom keys to item compounds. Serialize writes into
// the root before the built-in keys; Deserialize reads from it before they
// are interpreted.
type Handler interface {
	Serialize(root *nbt.Compound) error
	Deserialize(root *nbt.Compound) error
}

// HandlerFuncs adapts a pair of functions to Handler. Either may be nil.
type HandlerFuncs struct {
	SerializeFunc   func(root *nbt.Compound) error
	DeserializeFunc func(root *nbt.Compound) error
}

func (h HandlerFuncs) Serialize(root *nbt.Compound) error {
	if h.SerializeFunc == nil {
		return nil
	}
	return h.SerializeFunc(root)
}

func (h HandlerFuncs) Deserialize(root *nbt.Compound) error {
	if h.DeserializeFunc == nil {
		return nil
	}
	return h.DeserializeFunc(root)
}

// Registry is an ordered, append-only set of handlers. Writers replace the
// backing slice; readers take the current slice as an immutable snapshot,
// so registration never disturbs a bridge call already in progress.
type Registry struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewRegistry returns a registry holding hs in order; nil handlers are
// skipped.
func NewRegistry(hs ...Handler) *Registry {
	r := &Registry{}
	for _, h := range hs {
		r.Register(h)
	}
	return r
}

var defaultRegistry = &Registry{}

// DefaultRegistry returns the process-wide registry used by tags built
// without WithRegistry.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register appends h; nil values are ignored.
func (r *Registry) Register(h Handler) {
	if h == nil {
		return
	}
	r.mu.Lock()
	next := make([]Handler, len(r.handlers), len(r.handlers)+1)
	copy(next, r.handlers)
	r.handlers = append(next, h)
	r.mu.Unlock()
}

// Handlers returns a copy of the registered handlers in order.
func (r *Registry) Handlers() []Handler {
	return append([]Handler(nil), r.snapshot()...)
}

// Len reports the number of registered handlers.
func (r *Registry) Len() int { return len(r.snapshot()) }

// snapshot must not be mutated by callers.
func (r *Registry) snapshot() []Handler {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	hs := r.handlers
	r.mu.RUnlock()
	return hs
}
