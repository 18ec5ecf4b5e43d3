// Package store implements the named member store: a collection of
// serialized members (type tag plus encoded bytes) addressed by string
// keys. One Store belongs to one entity; the entity encodes its fields
// into members by name and reads them back through the serial codec.
//
// The package focuses on:
//   - Lookup-or-create access: Key(name) always yields a usable member slot
//   - Existence checks without mutation via Contains
//   - Whole-store persistence through pluggable serializers (Save/Load)
//
// Key Components:
//
//   - Store: the name → member mapping. The mapping itself is backed by a
//     concurrent map and is safe to access from multiple goroutines, but the
//     members it hands out are plain mutable pairs: concurrent encodes or
//     decodes of the same member require external synchronization.
//
//   - ISerializer: the interface for whole-store blob codecs. The
//     implementations live in the serializer package (binary, JSON, CBOR).
//
// Lifecycle:
//
// Members are created lazily on first access and live as long as their
// owning store; there is no per-member destruction. A Store needs no
// teardown beyond letting it go out of scope.
package store
