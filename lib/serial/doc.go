// Package serial implements a tagged binary codec for scalar values and
// homogeneous sequences of scalars. It is the core of the serialization
// system: every value is converted to a canonical little-endian byte layout
// and paired with a type tag that captures the value's signedness and bit
// width, so that a decoder can validate compatibility before touching its
// destination.
//
// The package contains three layers:
//
//   - Type tags: the closed Type enumeration and TagOf, which resolves the
//     tag for any Go type. Unsupported types resolve to NONE, which acts as
//     the "cannot encode this" sentinel throughout the package.
//
//   - Scalar codec: EncodeScalar and DecodeScalar convert one value to and
//     from exactly width/8 little-endian bytes, independent of host byte
//     order. Floating-point values travel as their raw bit pattern
//     reinterpreted as a same-width integer; 128-bit extended values
//     (Float128) are split into two 64-bit limbs.
//
//   - Sequence codec: EncodeSequence and the DecodeSequence variants handle
//     ordered collections of one scalar element type, prefixing a 4-byte
//     little-endian element count. Elements that cannot be encoded are
//     dropped and the count is adjusted to reflect only the elements that
//     actually made it onto the wire.
//
// On top of these, Member pairs a tag with an encoded buffer, and the
// generic Encode/Decode functions implement the member-level stream
// semantics: Encode dispatches on the shape of the value (single scalar,
// fixed-size array, slice) and overwrites the member; Decode checks the
// stored tag first and leaves the destination untouched on any mismatch.
//
// Error Handling:
//
// All data-shape errors are soft. Encoding an unsupported value produces an
// empty buffer (and leaves members unchanged), decoding a malformed or
// mismatched buffer reports ok=false and does not modify the destination.
// Nothing in this package panics or performs I/O.
//
// Thread Safety:
//
// The codec functions are pure and safe for concurrent use. A Member is a
// plain mutable pair and must not be encoded and decoded concurrently
// without external synchronization.
package serial
