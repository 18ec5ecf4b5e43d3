package util

import (
	"fmt"
	"strings"

	"github.com/dannuic/serial/lib/serializer"
	"github.com/dannuic/serial/lib/store"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// LoadEnv loads a .env file if present and makes SERIAL_* environment
// variables visible to viper, so every flag can also be set via env.
func LoadEnv() {
	_ = godotenv.Load()
	viper.SetEnvPrefix("serial")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// GetSerializer resolves the --serializer flag to a store serializer.
func GetSerializer() (store.ISerializer, error) {
	name := viper.GetString("serializer")
	switch name {
	case "binary":
		return serializer.NewBinarySerializer(), nil
	case "json":
		return serializer.NewJSONSerializer(), nil
	case "cbor":
		return serializer.NewCBORSerializer(), nil
	default:
		return nil, fmt.Errorf("unknown serializer %q (must be one of binary, json, cbor)", name)
	}
}

// NewLogger creates the CLI logger. Log level comes from the --log-level
// flag (or SERIAL_LOG_LEVEL).
func NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(viper.GetString("log-level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	return cfg.Build()
}
