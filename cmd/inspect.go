package cmd

import (
	"fmt"

	"github.com/jsphweid/automidi/midi"
	"github.com/jsphweid/automidi/pitch"
	"github.com/spf13/cobra"
)

var inspectLimit int

func init() {
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 0, "Print at most this many notes (0 prints all)")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Prints the notes of a MIDI file",
	Long:  `Prints the notes of a MIDI file as start, end, pitch and velocity.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspect(args[0])
	},
}

func inspect(path string) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		exitErr("inspect", err)
	}
	tl, err := midi.ReadTimeline(s)
	if err != nil {
		exitErr("inspect", err)
	}
	for i, evt := range tl {
		if inspectLimit > 0 && i >= inspectLimit {
			fmt.Printf("... %v more\n", len(tl)-i)
			break
		}
		fmt.Printf("%8.3f %8.3f %4v %-4v vel %v\n", evt.Start, evt.End, evt.Pitch, pitch.Name(evt.Pitch), evt.Velocity)
	}
}
