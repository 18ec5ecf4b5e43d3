package store

import (
	"fmt"
	"io"
	"sort"

	"github.com/dannuic/serial/lib/serial"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Serializer Interface
// --------------------------------------------------------------------------

// ISerializer is the interface for whole-store blob codecs. Implementations
// must be stateless and safe for concurrent use.
type ISerializer interface {
	// Serialize encodes every member of the store into a single byte blob.
	Serialize(s *Store) ([]byte, error)
	// Deserialize replaces the contents of the store with the members
	// encoded in b.
	Deserialize(b []byte, s *Store) error
}

// --------------------------------------------------------------------------
// Member Store
// --------------------------------------------------------------------------

// Store is a named collection of serialized members. The zero value is not
// usable, create instances with New.
type Store struct {
	members *xsync.MapOf[string, *serial.Member]
}

// New creates an empty member store.
func New() *Store {
	return &Store{
		members: xsync.NewMapOf[string, *serial.Member](),
	}
}

// Key returns the member slot for name, creating an empty one (tag NONE,
// no bytes) if the name is unknown. It never fails.
func (s *Store) Key(name string) *serial.Member {
	m, loaded := s.members.LoadOrStore(name, &serial.Member{})
	if !loaded {
		membersCreated.Inc()
	}
	return m
}

// Contains reports whether a member exists under name, without creating it.
func (s *Store) Contains(name string) bool {
	_, ok := s.members.Load(name)
	return ok
}

// Len returns the number of members in the store.
func (s *Store) Len() int {
	return s.members.Size()
}

// Names returns the member names in lexicographic order. The order is fixed
// so that serialized snapshots are deterministic.
func (s *Store) Names() []string {
	names := make([]string, 0, s.members.Size())
	s.members.Range(func(name string, _ *serial.Member) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// Clear removes every member from the store.
func (s *Store) Clear() {
	s.members.Clear()
}

// --------------------------------------------------------------------------
// Persistence
// --------------------------------------------------------------------------

// Save writes the store as one blob produced by the given serializer.
func (s *Store) Save(w io.Writer, ser ISerializer) error {
	b, err := ser.Serialize(s)
	if err != nil {
		return fmt.Errorf("serialize store: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write store blob: %w", err)
	}
	return nil
}

// Load replaces the contents of the store with the blob read from r.
func (s *Store) Load(r io.Reader, ser ISerializer) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read store blob: %w", err)
	}
	if err := ser.Deserialize(b, s); err != nil {
		return fmt.Errorf("deserialize store: %w", err)
	}
	return nil
}
