package serial

import (
	"encoding/binary"
	"math"
	"reflect"
)

// --------------------------------------------------------------------------
// Count Prefix
// --------------------------------------------------------------------------

// CountPrefixSize is the byte width of the little-endian element count that
// precedes every member payload. Scalar members carry a count of 1 so that
// scalar and sequence members share one physical layout.
const CountPrefixSize = 4

// WithCount returns a new buffer consisting of the little-endian u32 count
// followed by the payload.
func WithCount(count uint32, payload []byte) []byte {
	b := make([]byte, CountPrefixSize+len(payload))
	binary.LittleEndian.PutUint32(b, count)
	copy(b[CountPrefixSize:], payload)
	return b
}

// ReadCount extracts the count prefix. It reports false if the buffer is
// too short to hold one.
func ReadCount(b []byte) (uint32, bool) {
	if len(b) < CountPrefixSize {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

// --------------------------------------------------------------------------
// Scalar Encoding
// --------------------------------------------------------------------------

// EncodeScalar converts a single value to its canonical little-endian
// payload of exactly width/8 bytes, regardless of host byte order. The
// count prefix is not included. Unsupported types yield nil.
func EncodeScalar[T any](v T) []byte {
	return encodeScalar(reflect.ValueOf(&v).Elem())
}

func encodeScalar(rv reflect.Value) []byte {
	if rv.Type() == float128Type {
		f := rv.Interface().(Float128)
		b := make([]byte, 16)
		binary.LittleEndian.PutUint64(b[:8], f.Lo)
		binary.LittleEndian.PutUint64(b[8:], f.Hi)
		return b
	}

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return []byte{1}
		}
		return []byte{0}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return putBits(uint64(rv.Int()), int(rv.Type().Size()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return putBits(rv.Uint(), int(rv.Type().Size()))
	case reflect.Float32:
		// reinterpret the bit pattern as a same-width integer
		return putBits(uint64(math.Float32bits(float32(rv.Float()))), 4)
	case reflect.Float64:
		return putBits(math.Float64bits(rv.Float()), 8)
	default:
		return nil
	}
}

// putBits writes the low size bytes of v, least significant byte first.
func putBits(v uint64, size int) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	return b
}

// --------------------------------------------------------------------------
// Scalar Decoding
// --------------------------------------------------------------------------

// DecodeScalar converts a little-endian payload (count prefix already
// stripped) back into a value of type T. The payload must be exactly
// width/8 bytes; on any mismatch, or if T is unsupported, the zero value
// and false are returned.
func DecodeScalar[T any](payload []byte) (T, bool) {
	var v T
	ok := decodeScalar(reflect.ValueOf(&v).Elem(), payload)
	if !ok {
		var zero T
		return zero, false
	}
	return v, true
}

func decodeScalar(rv reflect.Value, payload []byte) bool {
	t := rv.Type()

	if t == float128Type {
		if len(payload) != 16 {
			return false
		}
		rv.Set(reflect.ValueOf(Float128{
			Lo: binary.LittleEndian.Uint64(payload[:8]),
			Hi: binary.LittleEndian.Uint64(payload[8:]),
		}))
		return true
	}

	tag := tagOf(t)
	if tag == NONE || len(payload) != tag.Size() {
		return false
	}

	bits := getBits(payload)

	switch t.Kind() {
	case reflect.Bool:
		rv.SetBool(bits != 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(signExtend(bits, len(payload)))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rv.SetUint(bits)
	case reflect.Float32:
		rv.SetFloat(float64(math.Float32frombits(uint32(bits))))
	case reflect.Float64:
		rv.SetFloat(math.Float64frombits(bits))
	default:
		return false
	}

	return true
}

// getBits reads up to 8 little-endian bytes into an integer.
func getBits(b []byte) uint64 {
	var v uint64
	for i, c := range b {
		v |= uint64(c) << (8 * i)
	}
	return v
}

// signExtend interprets the low width bytes of bits as a two's complement
// signed value.
func signExtend(bits uint64, width int) int64 {
	switch width {
	case 1:
		return int64(int8(bits))
	case 2:
		return int64(int16(bits))
	case 4:
		return int64(int32(bits))
	default:
		return int64(bits)
	}
}
