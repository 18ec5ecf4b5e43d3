package serial

import (
	"encoding/binary"
	"reflect"
)

// --------------------------------------------------------------------------
// Sequence Encoding
// --------------------------------------------------------------------------

// EncodeSequence encodes an ordered collection of scalars as
// [u32 LE count][elem bytes]*count, each element exactly width/8 bytes.
// Elements that cannot be encoded are dropped and the count reflects only
// the elements that made it onto the wire, so a sequence of an unsupported
// element type encodes to a bare zero count.
func EncodeSequence[T any](vals []T) []byte {
	return encodeSequence(reflect.ValueOf(vals))
}

// encodeSequence accepts any slice or array value.
func encodeSequence(rv reflect.Value) []byte {
	n := rv.Len()
	elemSize := tagOf(rv.Type().Elem()).Size()

	buf := make([]byte, CountPrefixSize, CountPrefixSize+n*elemSize)

	count := uint32(0)
	for i := 0; i < n; i++ {
		elem := encodeScalar(rv.Index(i))
		if len(elem) == 0 {
			droppedElements.Inc()
			continue
		}
		buf = append(buf, elem...)
		count++
	}

	binary.LittleEndian.PutUint32(buf[:CountPrefixSize], count)
	return buf
}

// --------------------------------------------------------------------------
// Sequence Decoding
// --------------------------------------------------------------------------

// DecodeSequence decodes a count-prefixed buffer into a new slice. It
// reports false, with no slice produced, if the element type is unsupported
// or the buffer is shorter than its count prefix promises.
func DecodeSequence[T any](buf []byte) ([]T, bool) {
	count, size, ok := sequenceHeader[T](buf)
	if !ok {
		return nil, false
	}

	out := make([]T, 0, count)
	for i := 0; i < count; i++ {
		elem, _ := DecodeScalar[T](elemPayload(buf, i, size))
		out = append(out, elem)
	}
	return out, true
}

// DecodeSequenceInto decodes into a fixed-size destination, writing
// positionally from index 0. The destination length acts as the max-count
// cap: at most min(count, len(dst)) elements are decoded. On malformed
// input the destination is left untouched and false is returned.
func DecodeSequenceInto[T any](buf []byte, dst []T) (int, bool) {
	count, size, ok := sequenceHeader[T](buf)
	if !ok {
		return 0, false
	}

	n := count
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i], _ = DecodeScalar[T](elemPayload(buf, i, size))
	}
	return n, true
}

// sequenceHeader validates the count prefix against the buffer length and
// the element width. The buffer must hold every element the count promises
// even when fewer will be decoded.
func sequenceHeader[T any](buf []byte) (count, elemSize int, ok bool) {
	c, ok := ReadCount(buf)
	if !ok {
		return 0, 0, false
	}

	size := TagOf[T]().Size()
	if size == 0 {
		return 0, 0, false
	}

	// compare in uint64 so a huge count cannot wrap the guard on 32-bit
	// platforms
	if uint64(len(buf)-CountPrefixSize) < uint64(c)*uint64(size) {
		return 0, 0, false
	}
	return int(c), size, true
}

// elemPayload slices out the i-th element of a validated sequence buffer.
func elemPayload(buf []byte, i, size int) []byte {
	off := CountPrefixSize + i*size
	return buf[off : off+size]
}
