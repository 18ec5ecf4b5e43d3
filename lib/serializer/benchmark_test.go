package serializer

import (
	"testing"

	"github.com/dannuic/serial/lib/serial"
	"github.com/dannuic/serial/lib/store"
)

// benchmarkStores returns stores of different shapes for targeted benchmarking
func benchmarkStores() map[string]*store.Store {
	small := store.New()
	serial.Encode(small.Key("id"), uint32(1))

	mixed := testStore()

	large := store.New()
	seq := make([]float64, 4096)
	for i := range seq {
		seq[i] = float64(i) * 0.5
	}
	serial.Encode(large.Key("samples"), seq)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		serial.Encode(large.Key(name), uint64(0xdeadbeef))
	}

	return map[string]*store.Store{
		"Small": small,
		"Mixed": mixed,
		"Large": large,
	}
}

func BenchmarkSerialize(b *testing.B) {
	for serName, factory := range testSerializers {
		ser := factory()
		for storeName, s := range benchmarkStores() {
			b.Run(serName+"/"+storeName, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := ser.Serialize(s); err != nil {
						b.Fatalf("serialize: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkDeserialize(b *testing.B) {
	for serName, factory := range testSerializers {
		ser := factory()
		for storeName, s := range benchmarkStores() {
			blob, err := ser.Serialize(s)
			if err != nil {
				b.Fatalf("serialize: %v", err)
			}
			b.Run(serName+"/"+storeName, func(b *testing.B) {
				b.ReportAllocs()
				dst := store.New()
				for i := 0; i < b.N; i++ {
					if err := ser.Deserialize(blob, dst); err != nil {
						b.Fatalf("deserialize: %v", err)
					}
				}
			})
		}
	}
}
