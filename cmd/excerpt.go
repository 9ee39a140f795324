package cmd

import (
	"fmt"

	"github.com/jsphweid/automidi/midi"
	"github.com/jsphweid/automidi/sample"
	"github.com/spf13/cobra"
)

var (
	excerptFromBeat float64
	excerptNotes    int
)

func init() {
	excerptCmd.Flags().Float64Var(&excerptFromBeat, "from-beat", 0, "Start of the excerpt in quarter notes")
	excerptCmd.Flags().IntVar(&excerptNotes, "notes", 10, "Notes per track to keep (0 keeps all)")
	rootCmd.AddCommand(excerptCmd)
}

var excerptCmd = &cobra.Command{
	Use:   "excerpt <in.mid> <out.mid>",
	Short: "Writes the first notes of a MIDI file to a new file",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			exitErr("excerpt", err)
		}
		tpq := sample.TicksPerQuarter(s)
		if tpq == 0 {
			exitErr("excerpt", fmt.Errorf("%v uses SMPTE timing", args[0]))
		}
		if excerptFromBeat < 0 {
			exitErr("excerpt", fmt.Errorf("negative start beat %v", excerptFromBeat))
		}

		res, err := sample.Create(s, uint64(excerptFromBeat*float64(tpq)), excerptNotes)
		if err != nil {
			exitErr("excerpt", err)
		}
		if err := res.WriteFile(args[1]); err != nil {
			exitErr("excerpt", err)
		}
		fmt.Printf("Excerpt saved at: %v\n", args[1])
	},
}
