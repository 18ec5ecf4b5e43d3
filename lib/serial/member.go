package serial

import "reflect"

// --------------------------------------------------------------------------
// Serialized Member
// --------------------------------------------------------------------------

// Member is one named value in its encoded form: a type tag plus the
// count-prefixed byte buffer. The zero value (NONE, empty buffer) is the
// state of a freshly created member that nothing has been encoded into.
type Member struct {
	Tag  Type
	Data []byte
}

// --------------------------------------------------------------------------
// Member Encoding (stream-out)
// --------------------------------------------------------------------------

// Encode writes a value into a member, overwriting its tag and buffer.
// The value's shape selects the codec: a single scalar encodes with a count
// prefix of 1, a slice or fixed-size array encodes as a sequence. If the
// value cannot be encoded at all (unsupported scalar type, or a shape such
// as a map that this format does not cover) the member is left unchanged,
// so a failed encode never corrupts previously stored bytes.
//
// The member is returned to allow chained use.
func Encode[T any](m *Member, v T) *Member {
	encodeMembers.Inc()

	rv := reflect.ValueOf(&v).Elem()

	// scalars first: Float128 is an aggregate but encodes as one value
	if payload := encodeScalar(rv); payload != nil {
		m.Tag = tagOf(rv.Type())
		m.Data = WithCount(1, payload)
		return m
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		// the sequence buffer always lands, even when every element was
		// dropped; the tag then records the (possibly NONE) element type
		m.Tag = tagOf(rv.Type().Elem())
		m.Data = encodeSequence(rv)
	}

	return m
}

// --------------------------------------------------------------------------
// Member Decoding (stream-in)
// --------------------------------------------------------------------------

// Decode reads a member back into dst. The stored tag must equal the tag of
// the destination's element type; on a tag mismatch, a malformed buffer, or
// an unsupported destination shape the destination is left entirely
// unmodified and false is returned.
//
// Slices are appended to, fixed-size arrays are filled positionally with
// their length acting as the max-count cap, and a plain scalar destination
// takes the first payload value.
func Decode[T any](m *Member, dst *T) bool {
	decodeMembers.Inc()

	rv := reflect.ValueOf(dst).Elem()
	t := rv.Type()

	switch {
	case t.Kind() == reflect.Slice:
		return decodeMemberSequence(m, rv, t.Elem(), -1)
	case t.Kind() == reflect.Array:
		return decodeMemberSequence(m, rv, t.Elem(), rv.Len())
	default:
		return decodeMemberScalar(m, rv, t)
	}
}

func decodeMemberScalar(m *Member, rv reflect.Value, t reflect.Type) bool {
	if m.Tag != tagOf(t) {
		tagMismatches.Inc()
		return false
	}

	width := m.Tag.Size()
	if width == 0 || len(m.Data) < CountPrefixSize+width {
		return false
	}

	return decodeScalar(rv, m.Data[CountPrefixSize:CountPrefixSize+width])
}

// decodeMemberSequence decodes into a slice (max < 0, append) or a fixed
// destination (positional up to max elements).
func decodeMemberSequence(m *Member, rv reflect.Value, elem reflect.Type, max int) bool {
	if m.Tag != tagOf(elem) {
		tagMismatches.Inc()
		return false
	}

	count, ok := ReadCount(m.Data)
	if !ok {
		return false
	}

	size := m.Tag.Size()
	if size == 0 {
		return false
	}
	// compare in uint64 so a huge count cannot wrap the guard on 32-bit
	// platforms
	if uint64(len(m.Data)-CountPrefixSize) < uint64(count)*uint64(size) {
		return false
	}

	n := int(count)
	if max >= 0 && n > max {
		n = max
	}

	for i := 0; i < n; i++ {
		ev := reflect.New(elem).Elem()
		decodeScalar(ev, elemPayload(m.Data, i, size))
		if max < 0 {
			rv.Set(reflect.Append(rv, ev))
		} else {
			rv.Index(i).Set(ev)
		}
	}
	return true
}
