package serial

import (
	"math/bits"
	"testing"
)

type customID uint16

func TestTagOf(t *testing.T) {
	tests := []struct {
		name string
		got  Type
		want Type
	}{
		{"uint8", TagOf[uint8](), UINT8},
		{"int8", TagOf[int8](), INT8},
		{"uint16", TagOf[uint16](), UINT16},
		{"int16", TagOf[int16](), INT16},
		{"uint32", TagOf[uint32](), UINT32},
		{"int32", TagOf[int32](), INT32},
		{"uint64", TagOf[uint64](), UINT64},
		{"int64", TagOf[int64](), INT64},
		{"float32", TagOf[float32](), FLT32},
		{"float64", TagOf[float64](), FLT64},
		{"Float128", TagOf[Float128](), FLT128},
		{"bool", TagOf[bool](), UINT8},
		{"named uint16", TagOf[customID](), UINT16},
		{"byte alias", TagOf[byte](), UINT8},
		{"rune alias", TagOf[rune](), INT32},
		{"string", TagOf[string](), NONE},
		{"struct", TagOf[struct{ X int }](), NONE},
		{"slice", TagOf[[]byte](), NONE},
		{"map", TagOf[map[string]int](), NONE},
		{"pointer", TagOf[*int](), NONE},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, tc.got)
			}
		})
	}
}

func TestTagOfPlatformSizedInts(t *testing.T) {
	wantInt, wantUint := INT64, UINT64
	if bits.UintSize == 32 {
		wantInt, wantUint = INT32, UINT32
	}

	if got := TagOf[int](); got != wantInt {
		t.Errorf("int: expected %s, got %s", wantInt, got)
	}
	if got := TagOf[uint](); got != wantUint {
		t.Errorf("uint: expected %s, got %s", wantUint, got)
	}
}

func TestTagStability(t *testing.T) {
	// the tag is a pure function of the static type
	for i := 0; i < 100; i++ {
		if TagOf[int32]() != INT32 {
			t.Fatal("TagOf[int32] changed between calls")
		}
	}
}

func TestTypeSize(t *testing.T) {
	tests := map[Type]int{
		NONE:   0,
		UINT8:  1,
		INT8:   1,
		UINT16: 2,
		INT16:  2,
		UINT32: 4,
		INT32:  4,
		UINT64: 8,
		INT64:  8,
		FLT32:  4,
		FLT64:  8,
		FLT128: 16,
	}

	for tag, want := range tests {
		if got := tag.Size(); got != want {
			t.Errorf("%s: expected size %d, got %d", tag, want, got)
		}
	}
}

func TestTypeString(t *testing.T) {
	if NONE.String() != "NONE" {
		t.Errorf("unexpected NONE string: %s", NONE)
	}
	if FLT128.String() != "FLT128" {
		t.Errorf("unexpected FLT128 string: %s", FLT128)
	}
	if Type(200).String() != "Unknown" {
		t.Errorf("unexpected out-of-range string: %s", Type(200))
	}
}
