// javasymidx indexes java sources and answers name-resolution queries
// over the resulting class hierarchy.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	sourcePathFlag string
	patternsFlag   []string
	verboseFlag    bool
)

var rootCmd = &cobra.Command{
	Use:           "javasymidx",
	Short:         "Index java sources and resolve simple names against the class hierarchy",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourcePathFlag, "source-path", ".", "colon-separated list of source directories and source archives")
	rootCmd.PersistentFlags().StringSliceVar(&patternsFlag, "pattern", nil, "glob pattern(s) selecting source files within each entry (default **/*.java)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verboseFlag {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := newLogger()
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
