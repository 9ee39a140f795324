package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/automidi/config"
	"github.com/jsphweid/automidi/logger"
	"github.com/spf13/cobra"
)

var cfg = config.Load()

var rootCmd = &cobra.Command{
	Use:   "automidi",
	Short: "Procedural MIDI generator",
	Long:  `Generates random melodies and chords over a scale and writes them as standard MIDI files.`,
}

// replaced in tests
var exit = os.Exit

func Execute(c *config.Config) {
	cfg = c
	logger.SetDebug(cfg.Debug)
	if err := rootCmd.Execute(); err != nil {
		// cobra has already printed the error
		fail()
	}
}

// fail flushes pending Sentry events, then exits with status 1.
func fail() {
	logger.Flush()
	exit(1)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	fail()
}
