package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/automidi/input"
	"github.com/jsphweid/automidi/output"
	"github.com/spf13/cobra"
)

var (
	raw      = input.Defaults()
	outDir   string
	doUpload bool
)

func init() {
	f := generateCmd.Flags()
	f.StringVar(&raw.BPM, "bpm", raw.BPM, "Beats per minute")
	f.StringVarP(&raw.Length, "length", "l", raw.Length, "Length in seconds")
	f.StringVar(&raw.TimeSignature, "time-signature", raw.TimeSignature, "Time signature, e.g. 3/4 or 6/8")
	f.StringVarP(&raw.RootKey, "root", "r", raw.RootKey, "Root key as a note name (C4) or number (60)")
	f.StringVarP(&raw.Scale, "scale", "s", raw.Scale, "Scale pattern, or Random to re-roll per note")
	f.StringVar(&raw.NoteLength, "note-length", raw.NoteLength, "Whole, Half, Quarter, Eighth, Sixteenth or Random")
	f.StringVar(&raw.MinNoteLength, "min-note-length", raw.MinNoteLength, "Shortest length when note length is Random")
	f.StringVar(&raw.MaxNoteLength, "max-note-length", raw.MaxNoteLength, "Longest length when note length is Random")
	f.StringVar(&raw.ChordProb, "chord-prob", raw.ChordProb, "Chord probability, 0..1 or a percentage like 30%")
	f.StringVar(&raw.ChordType, "chord-type", raw.ChordType, "Chord type used for every chord")
	f.StringVar(&raw.RestProb, "rest-prob", raw.RestProb, "Rest probability, 0..1 or a percentage like 10%")
	f.StringVar(&raw.Program, "program", raw.Program, "General MIDI program number (0-127)")
	f.StringVarP(&raw.OutputName, "name", "n", raw.OutputName, "Output file name without extension")
	f.StringVar(&raw.Seed, "seed", raw.Seed, "Random seed, 0 seeds from the clock")
	f.StringVarP(&outDir, "out-dir", "o", "", "Output directory (default: $AUTOMIDI_MUSIC_DIR or ~/Music)")
	f.BoolVar(&doUpload, "upload", true, "Also upload to $AUTOMIDI_S3_BUCKET when it is set")

	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a MIDI file",
	Long:  `Generates a random melody with optional chords and rests and saves it as a MIDI file.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := input.Parse(raw)
		if err != nil {
			exitErr("invalid input", err)
			return
		}

		dir := outDir
		if dir == "" {
			dir = cfg.MusicDir
		}
		w, err := newWriter(dir, doUpload)
		if err != nil {
			exitErr("output", err)
			return
		}

		// the notifier has already reported the failure
		if _, _, err := runGeneration(cmd.Context(), p, w, cliNotifier{}, input.Meta(p)); err != nil {
			fail()
		}
	},
}

type cliNotifier struct{}

func (cliNotifier) Success(res output.Result) {
	if res.Path != "" {
		fmt.Printf("MIDI file has been generated and saved at: %v\n", res.Path)
	}
	if res.Location != "" {
		fmt.Printf("Uploaded to: %v\n", res.Location)
	}
	if res.Stats.Skipped > 0 {
		fmt.Printf("Skipped %v notes outside the MIDI range\n", res.Stats.Skipped)
	}
}

func (cliNotifier) Failure(err error) {
	fmt.Fprintf(os.Stderr, "error: MIDI generation failed: %v\n", err)
}
