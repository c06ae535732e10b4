package object

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrDisposed is returned when disconnecting from an already-disposed
// object. Disposal races are inherent to teardown ordering, so callers
// normally treat this error as benign.
var ErrDisposed = errors.New("object: disposed")

// HandlerFunc handles a signal emission. The first argument is the emitting
// object; the rest are the signal's own arguments.
type HandlerFunc func(args ...any)

// handlerID is the source of unique connection IDs across all objects.
var handlerID uint64

// connection pairs a handler with the signal it is connected to.
type connection struct {
	signal  string
	handler HandlerFunc
}

// Object is a named-property container whose changes can be observed via
// signals. Writing a property emits "notify::<kebab-case-name>".
//
// Objects are safe for concurrent use, but emission runs handlers
// synchronously on the writing goroutine; the binding layer assumes a
// single event loop.
type Object struct {
	mu       sync.Mutex
	props    map[string]any
	handlers map[uint64]connection
	disposed atomic.Bool
}

// New creates an empty object.
func New() *Object {
	return &Object{
		props:    make(map[string]any),
		handlers: make(map[uint64]connection),
	}
}

// Get returns the named property's value and whether it exists.
func (o *Object) Get(name string) (any, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	v, ok := o.props[name]
	return v, ok
}

// Has reports whether the named property exists.
func (o *Object) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

// Set stores the named property and emits its change signal.
func (o *Object) Set(name string, value any) {
	if o.disposed.Load() {
		return
	}
	o.mu.Lock()
	o.props[name] = value
	o.mu.Unlock()

	o.Notify(name)
}

// Delete removes the named property without emitting a change signal.
// Bindings observe removal on their next read and fall back to defaults.
func (o *Object) Delete(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.props, name)
}

// Connect registers a handler for the named signal and returns its
// connection ID. Connecting to a disposed object returns 0 and the handler
// is never invoked.
func (o *Object) Connect(signal string, handler HandlerFunc) uint64 {
	if o.disposed.Load() || handler == nil {
		return 0
	}

	id := atomic.AddUint64(&handlerID, 1)
	o.mu.Lock()
	o.handlers[id] = connection{signal: signal, handler: handler}
	o.mu.Unlock()
	return id
}

// Disconnect removes the connection with the given ID.
// Returns ErrDisposed if the object has been disposed.
func (o *Object) Disconnect(id uint64) error {
	if o.disposed.Load() {
		return ErrDisposed
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.handlers, id)
	return nil
}

// Emit invokes every handler connected to the named signal, passing the
// object itself followed by args. The handler list is copied first so
// handlers may connect or disconnect during emission.
func (o *Object) Emit(signal string, args ...any) {
	if o.disposed.Load() {
		return
	}

	o.mu.Lock()
	handlers := make([]HandlerFunc, 0, len(o.handlers))
	for _, conn := range o.handlers {
		if conn.signal == signal {
			handlers = append(handlers, conn.handler)
		}
	}
	o.mu.Unlock()

	emitArgs := append([]any{o}, args...)
	for _, h := range handlers {
		h(emitArgs...)
	}
}

// Notify emits the property-change signal for the named property.
func (o *Object) Notify(property string) {
	o.Emit(NotifySignal(property), property)
}

// IsDisposed reports whether the object has been disposed.
func (o *Object) IsDisposed() bool {
	return o.disposed.Load()
}

// Dispose drops all handlers and marks the object terminal. Subsequent
// Disconnect calls return ErrDisposed; Set, Emit, and Connect become no-ops.
func (o *Object) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	o.mu.Lock()
	o.handlers = nil
	o.mu.Unlock()
}
