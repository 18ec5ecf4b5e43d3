package cmd

import (
	"fmt"
	"os"

	"github.com/dannuic/serial/cmd/inspect"
	"github.com/dannuic/serial/cmd/perf"
	"github.com/dannuic/serial/cmd/util"
	"github.com/dannuic/serial/lib/serial"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "serial",
		Short: "tagged binary serialization toolkit",
		Long: fmt.Sprintf(`serial (v%s)

A tagged, endian-safe binary serialization core with tooling to
inspect and benchmark serialized member stores.`, Version),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			util.LoadEnv()
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of serial",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("serial v%s\n", Version)
		},
	}

	// tagsCmd prints the closed set of supported type tags
	tagsCmd = &cobra.Command{
		Use:   "tags",
		Short: "List the supported type tags",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%-8s %-6s %s\n", "TAG", "VALUE", "WIDTH")
			for tag := serial.NONE; tag <= serial.FLT128; tag++ {
				fmt.Printf("%-8s %-6d %d bytes\n", tag, uint8(tag), tag.Size())
			}
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(inspect.InspectCmd)
	RootCmd.AddCommand(perf.PerfCmd)
	RootCmd.AddCommand(tagsCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "serializer"
	RootCmd.PersistentFlags().String(key, "binary", util.WrapString("store serializer to use (binary, json, cbor)"))
	key = "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("log level (debug, info, warn, error)"))

	cobra.OnInitialize(func() {
		if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
			fmt.Println("Error binding flags:", err)
			os.Exit(1)
		}
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
