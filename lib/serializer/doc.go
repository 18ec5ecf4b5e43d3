// Package serializer provides whole-store blob codecs: implementations of
// store.ISerializer that turn a member store into a single byte slice and
// back. They are used for persisting a store (store.Save / store.Load) and
// for exporting it to other tools.
//
// Key Components:
//
//   - binarySerializerImpl: custom binary format, little-endian throughout,
//     with members written in name order so identical stores always produce
//     identical blobs. This is the canonical persistence format.
//
//   - jsonSerializerImpl: JSON encoding with base64 member payloads. Larger
//     and slower, but human-readable; useful for debugging and interop.
//
//   - cborSerializerImpl: CBOR encoding via fxamacker/cbor. A compact
//     self-describing alternative for exchange with non-Go consumers.
//
// Thread Safety:
//
//	All implementations are stateless and safe for concurrent use.
//
// Usage:
//
//	ser := serializer.NewBinarySerializer()
//	blob, err := ser.Serialize(st)
//	// ... store or transmit blob ...
//	err = ser.Deserialize(blob, st)
package serializer
