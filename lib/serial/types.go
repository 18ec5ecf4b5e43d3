package serial

import "reflect"

// --------------------------------------------------------------------------
// Type Tags
// --------------------------------------------------------------------------

// Type identifies the signedness and bit width of an encoded scalar value.
// It is stored next to the encoded bytes (never inside them) and checked on
// decode before any destination is modified.
type Type uint8

const (
	NONE Type = iota // unsupported type, never a successfully encoded value
	UINT8
	INT8
	UINT16
	INT16
	UINT32
	INT32
	UINT64
	INT64
	FLT32
	FLT64
	FLT128
)

func (t Type) String() string {
	switch t {
	case NONE:
		return "NONE"
	case UINT8:
		return "UINT8"
	case INT8:
		return "INT8"
	case UINT16:
		return "UINT16"
	case INT16:
		return "INT16"
	case UINT32:
		return "UINT32"
	case INT32:
		return "INT32"
	case UINT64:
		return "UINT64"
	case INT64:
		return "INT64"
	case FLT32:
		return "FLT32"
	case FLT64:
		return "FLT64"
	case FLT128:
		return "FLT128"
	default:
		return "Unknown"
	}
}

// Size returns the encoded payload width in bytes, or 0 for NONE.
func (t Type) Size() int {
	switch t {
	case UINT8, INT8:
		return 1
	case UINT16, INT16:
		return 2
	case UINT32, INT32, FLT32:
		return 4
	case UINT64, INT64, FLT64:
		return 8
	case FLT128:
		return 16
	default:
		return 0
	}
}

// --------------------------------------------------------------------------
// Extended Precision Values
// --------------------------------------------------------------------------

// Float128 holds the raw bit pattern of a 128-bit extended-precision
// floating-point value as two 64-bit limbs. Go has no native 128-bit float,
// so the value is opaque: the codec moves the bits, it never interprets them.
//
// On the wire the low limb is encoded first, each limb little-endian. The
// limb order is a fixed property of this format, not of the host.
type Float128 struct {
	Lo uint64
	Hi uint64
}

var float128Type = reflect.TypeOf(Float128{})

// --------------------------------------------------------------------------
// Tag Resolution
// --------------------------------------------------------------------------

// TagOf resolves the type tag for T. Integral types classify by byte size
// and signedness (int, uint and uintptr by their platform size), bool counts
// as an 8-bit unsigned integral, float32/float64/Float128 classify by width.
// Every other type resolves to NONE.
//
// The result is a pure function of T: repeated calls always agree.
func TagOf[T any]() Type {
	return tagOf(reflect.TypeOf((*T)(nil)).Elem())
}

func tagOf(t reflect.Type) Type {
	if t == float128Type {
		return FLT128
	}

	switch t.Kind() {
	case reflect.Bool:
		return UINT8
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intTag(t.Size(), true)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return intTag(t.Size(), false)
	case reflect.Float32:
		return FLT32
	case reflect.Float64:
		return FLT64
	default:
		return NONE
	}
}

// intTag maps an integral byte size to its tag pair.
func intTag(size uintptr, signed bool) Type {
	switch size {
	case 1:
		if signed {
			return INT8
		}
		return UINT8
	case 2:
		if signed {
			return INT16
		}
		return UINT16
	case 4:
		if signed {
			return INT32
		}
		return UINT32
	case 8:
		if signed {
			return INT64
		}
		return UINT64
	default:
		return NONE
	}
}
