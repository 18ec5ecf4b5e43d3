package registry

import (
	"fmt"
	"io"

	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Cloneable Capability
// --------------------------------------------------------------------------

// Cloneable is the capability every concrete entity type must expose so the
// registry can reconstruct it from a bare name: produce a new, blank
// instance of its own concrete runtime type.
type Cloneable interface {
	// Clone returns a new blank instance of the same concrete type as the
	// receiver. It must not share mutable state with the receiver.
	Clone() Cloneable
}

// --------------------------------------------------------------------------
// Errors
// --------------------------------------------------------------------------

// ErrUnknownType is returned by Create for names no prototype was
// registered under.
var ErrUnknownType = fmt.Errorf("unknown type name")

// --------------------------------------------------------------------------
// Registry
// --------------------------------------------------------------------------

// Registry maps type names to prototype instances. Create instances with
// New; the zero value is not usable.
type Registry struct {
	protos *xsync.MapOf[string, Cloneable]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		protos: xsync.NewMapOf[string, Cloneable](),
	}
}

// Add registers proto under name and transfers ownership of it to the
// registry. The first registration for a name always wins: if the name is
// already taken the rejected prototype is disposed of immediately and false
// is returned. A nil prototype is ignored.
func (r *Registry) Add(name string, proto Cloneable) bool {
	if proto == nil {
		return false
	}

	if _, taken := r.protos.LoadOrStore(name, proto); taken {
		dispose(proto)
		return false
	}
	return true
}

// Create looks up the prototype registered under name and returns a clone
// of it: a new, independently owned, blank instance of the same concrete
// type. The caller owns the returned instance. For unregistered names an
// error wrapping ErrUnknownType is returned and no instance is produced.
func (r *Registry) Create(name string) (Cloneable, error) {
	proto, ok := r.protos.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return proto.Clone(), nil
}

// Contains reports whether a prototype is registered under name.
func (r *Registry) Contains(name string) bool {
	_, ok := r.protos.Load(name)
	return ok
}

// Len returns the number of registered prototypes.
func (r *Registry) Len() int {
	return r.protos.Size()
}

// Close disposes of every prototype the registry still owns and empties
// the registry. The registry must not be used afterwards.
func (r *Registry) Close() {
	r.protos.Range(func(name string, proto Cloneable) bool {
		dispose(proto)
		r.protos.Delete(name)
		return true
	})
}

// dispose releases a prototype the registry is done with. Prototypes that
// hold resources can hook this by implementing io.Closer.
func dispose(proto Cloneable) {
	if c, ok := proto.(io.Closer); ok {
		_ = c.Close()
	}
}
