package serial

import (
	"bytes"
	"reflect"
	"testing"
)

func TestSequenceLayout(t *testing.T) {
	// [u32 LE count][elem bytes], count and elements in declaration order
	got := EncodeSequence([]uint8{1, 2, 3})
	want := []byte{0x03, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03}
	if !bytes.Equal(got, want) {
		t.Fatalf("expected % x, got % x", want, got)
	}

	got = EncodeSequence([]uint16{0x1234, 0x5678})
	want = []byte{0x02, 0x00, 0x00, 0x00, 0x34, 0x12, 0x78, 0x56}
	if !bytes.Equal(got, want) {
		t.Fatalf("expected % x, got % x", want, got)
	}
}

func TestSequenceRoundTrip(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		in := []uint8{0, 1, 127, 255}
		out, ok := DecodeSequence[uint8](EncodeSequence(in))
		if !ok || !reflect.DeepEqual(in, out) {
			t.Fatalf("round trip mismatch: %v -> %v (ok=%t)", in, out, ok)
		}
	})
	t.Run("int32", func(t *testing.T) {
		in := []int32{-1, 0, 1, -2147483648}
		out, ok := DecodeSequence[int32](EncodeSequence(in))
		if !ok || !reflect.DeepEqual(in, out) {
			t.Fatalf("round trip mismatch: %v -> %v (ok=%t)", in, out, ok)
		}
	})
	t.Run("float64", func(t *testing.T) {
		in := []float64{0, 1.25, -3.5e17}
		out, ok := DecodeSequence[float64](EncodeSequence(in))
		if !ok || !reflect.DeepEqual(in, out) {
			t.Fatalf("round trip mismatch: %v -> %v (ok=%t)", in, out, ok)
		}
	})
	t.Run("Float128", func(t *testing.T) {
		in := []Float128{{Lo: 1, Hi: 2}, {Lo: 3, Hi: 4}}
		out, ok := DecodeSequence[Float128](EncodeSequence(in))
		if !ok || !reflect.DeepEqual(in, out) {
			t.Fatalf("round trip mismatch: %v -> %v (ok=%t)", in, out, ok)
		}
	})
	t.Run("empty", func(t *testing.T) {
		out, ok := DecodeSequence[uint8](EncodeSequence([]uint8{}))
		if !ok || len(out) != 0 {
			t.Fatalf("expected empty decode, got %v (ok=%t)", out, ok)
		}
	})
}

func TestSequenceUnsupportedElements(t *testing.T) {
	// unsupported elements are dropped and the count adjusted; for an
	// unsupported element type that leaves a bare zero count
	got := EncodeSequence([]string{"a", "b"})
	want := []byte{0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("expected % x, got % x", want, got)
	}

	if _, ok := DecodeSequence[string](got); ok {
		t.Error("expected decode of an unsupported element type to fail")
	}
}

func TestSequenceTruncatedBuffer(t *testing.T) {
	// count promises 3 elements but only 2 are present
	buf := []byte{0x03, 0x00, 0x00, 0x00, 0x01, 0x02}

	if _, ok := DecodeSequence[uint8](buf); ok {
		t.Error("expected decode of a truncated buffer to fail")
	}

	// the fixed destination must be left untouched on failure
	dst := []uint8{9, 9, 9}
	n, ok := DecodeSequenceInto(buf, dst)
	if ok || n != 0 {
		t.Errorf("expected soft failure, got n=%d ok=%t", n, ok)
	}
	if !reflect.DeepEqual(dst, []uint8{9, 9, 9}) {
		t.Errorf("destination modified on failure: %v", dst)
	}

	if _, ok := DecodeSequence[uint8]([]byte{1, 2}); ok {
		t.Error("expected decode without a full count prefix to fail")
	}
}

func TestSequenceOversizedCountRejected(t *testing.T) {
	// a count near MaxUint32 must fail the length guard on every platform
	// instead of wrapping the element arithmetic
	buf := []byte{0xff, 0xff, 0xff, 0xff, 0x01, 0x02}

	if _, ok := DecodeSequence[uint8](buf); ok {
		t.Error("expected decode with an oversized count to fail")
	}

	dst := []uint8{9, 9}
	n, ok := DecodeSequenceInto(buf, dst)
	if ok || n != 0 {
		t.Errorf("expected soft failure, got n=%d ok=%t", n, ok)
	}
	if !reflect.DeepEqual(dst, []uint8{9, 9}) {
		t.Errorf("destination modified on failure: %v", dst)
	}

	// wider elements overflow the product even sooner
	if _, ok := DecodeSequence[uint64](buf); ok {
		t.Error("expected decode with an oversized count to fail")
	}
}

func TestSequenceIntoCapped(t *testing.T) {
	buf := EncodeSequence([]uint16{10, 20, 30, 40})

	// destination shorter than the encoded count: capacity caps the decode
	dst := make([]uint16, 2)
	n, ok := DecodeSequenceInto(buf, dst)
	if !ok || n != 2 {
		t.Fatalf("expected n=2 ok=true, got n=%d ok=%t", n, ok)
	}
	if !reflect.DeepEqual(dst, []uint16{10, 20}) {
		t.Fatalf("unexpected destination: %v", dst)
	}

	// destination longer than the encoded count: trailing slots untouched
	dst = []uint16{1, 1, 1, 1, 1, 1}
	n, ok = DecodeSequenceInto(buf, dst)
	if !ok || n != 4 {
		t.Fatalf("expected n=4 ok=true, got n=%d ok=%t", n, ok)
	}
	if !reflect.DeepEqual(dst, []uint16{10, 20, 30, 40, 1, 1}) {
		t.Fatalf("unexpected destination: %v", dst)
	}
}
