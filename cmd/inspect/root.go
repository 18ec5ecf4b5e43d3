package inspect

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/dannuic/serial/cmd/util"
	"github.com/dannuic/serial/lib/serial"
	"github.com/dannuic/serial/lib/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const previewBytes = 32

var (
	InspectCmd = &cobra.Command{
		Use:   "inspect <file>",
		Short: "Decode and pretty print a serialized member store",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
	}
)

func init() {
	key := "raw"
	InspectCmd.Flags().Bool(key, false, util.WrapString("Print the full payload of every member instead of a preview"))
}

func run(_ *cobra.Command, args []string) error {
	logger, err := util.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ser, err := util.GetSerializer()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer func() { _ = f.Close() }()

	s := store.New()
	if err := s.Load(f, ser); err != nil {
		return err
	}

	names := s.Names()
	fmt.Printf("%d member(s)\n\n", len(names))
	fmt.Printf("%-20s %-8s %-8s %-8s %s\n", "NAME", "TAG", "COUNT", "BYTES", "PAYLOAD")

	for _, name := range names {
		m := s.Key(name)
		fmt.Printf("%-20s %-8s %-8s %-8d %s\n",
			name, m.Tag, countColumn(m), len(m.Data), payloadColumn(m))
	}

	return nil
}

// countColumn renders the count prefix, or a dash for buffers without one.
func countColumn(m *serial.Member) string {
	count, ok := serial.ReadCount(m.Data)
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%d", count)
}

func payloadColumn(m *serial.Member) string {
	payload := m.Data
	if len(payload) > serial.CountPrefixSize {
		payload = payload[serial.CountPrefixSize:]
	} else {
		payload = nil
	}

	if !viper.GetBool("raw") && len(payload) > previewBytes {
		return hex.EncodeToString(payload[:previewBytes]) + "..."
	}
	return hex.EncodeToString(payload)
}
