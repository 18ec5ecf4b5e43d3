package perf

import (
	"fmt"
	"os"

	"github.com/dannuic/serial/cmd/util"
	"github.com/dannuic/serial/lib/serial"
	"github.com/dannuic/serial/lib/store"
	"github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	PerfCmd = &cobra.Command{
		Use:   "perf",
		Short: "In-process codec and serializer benchmarks",
		RunE:  run,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
	}

	perfIterations = 100_000
	perfSeqLen     = 1024
)

func init() {
	key := "iterations"
	PerfCmd.Flags().Int(key, perfIterations, util.WrapString("Number of iterations per benchmark"))
	key = "sequence-length"
	PerfCmd.Flags().Int(key, perfSeqLen, util.WrapString("Element count of the benchmark sequence"))
}

func run(_ *cobra.Command, _ []string) error {
	perfIterations = viper.GetInt("iterations")
	perfSeqLen = viper.GetInt("sequence-length")

	ser, err := util.GetSerializer()
	if err != nil {
		return err
	}

	fmt.Printf("running %d iterations per benchmark (sequence length %d)\n\n",
		perfIterations, perfSeqLen)

	registry := metrics.NewRegistry()

	seq := make([]float64, perfSeqLen)
	for i := range seq {
		seq[i] = float64(i) * 0.25
	}

	// member-level codec
	encTimer := metrics.NewRegisteredTimer("member.encode", registry)
	var m serial.Member
	for i := 0; i < perfIterations; i++ {
		encTimer.Time(func() {
			serial.Encode(&m, seq)
		})
	}

	decTimer := metrics.NewRegisteredTimer("member.decode", registry)
	dst := make([]float64, 0, perfSeqLen)
	for i := 0; i < perfIterations; i++ {
		decTimer.Time(func() {
			dst = dst[:0]
			serial.Decode(&m, &dst)
		})
	}

	// whole-store serializer
	s := store.New()
	serial.Encode(s.Key("id"), uint64(1))
	serial.Encode(s.Key("samples"), seq)

	serTimer := metrics.NewRegisteredTimer("store.serialize", registry)
	var blob []byte
	for i := 0; i < perfIterations; i++ {
		serTimer.Time(func() {
			blob, err = ser.Serialize(s)
		})
		if err != nil {
			return fmt.Errorf("serialize: %w", err)
		}
	}

	deserTimer := metrics.NewRegisteredTimer("store.deserialize", registry)
	out := store.New()
	for i := 0; i < perfIterations; i++ {
		deserTimer.Time(func() {
			err = ser.Deserialize(blob, out)
		})
		if err != nil {
			return fmt.Errorf("deserialize: %w", err)
		}
	}

	metrics.WriteOnce(registry, os.Stdout)
	return nil
}
