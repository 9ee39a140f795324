package cmd

import (
	"fmt"

	"github.com/jsphweid/automidi/chord"
	"github.com/jsphweid/automidi/midi"
	"github.com/jsphweid/automidi/model"
	"github.com/jsphweid/automidi/pitch"
	"github.com/jsphweid/automidi/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <file.mid>",
	Short: "Creates a report",
	Long:  `Summarizes the notes, chords and pitch range of a MIDI file.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := analyzeFile(args[0])
		if err != nil {
			exitErr("report", err)
		}
		printReport(r)
	},
}

type fileReport struct {
	numTracks     int
	numNotes      int
	numChords     int
	chordSizes    []int
	chordKeys     map[string]int
	lowest        model.Pitch
	highest       model.Pitch
	minVelocity   uint8
	maxVelocity   uint8
	lengthSeconds float64
}

func analyzeFile(path string) (fileReport, error) {
	var report fileReport
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return report, err
	}
	tl, err := midi.ReadTimeline(s)
	if err != nil {
		return report, err
	}

	report.numTracks = len(s.Tracks)
	report.numNotes = len(tl)
	report.chordKeys = make(map[string]int)
	for i, evt := range tl {
		if i == 0 {
			report.lowest, report.highest = evt.Pitch, evt.Pitch
			report.minVelocity, report.maxVelocity = evt.Velocity, evt.Velocity
		}
		report.lowest = util.Min(report.lowest, evt.Pitch)
		report.highest = util.Max(report.highest, evt.Pitch)
		report.minVelocity = util.Min(report.minVelocity, evt.Velocity)
		report.maxVelocity = util.Max(report.maxVelocity, evt.Velocity)
		report.lengthSeconds = util.Max(report.lengthSeconds, evt.End)
	}

	for _, c := range chord.GetChords(s) {
		if len(c.Notes) < 2 {
			continue
		}
		report.numChords++
		report.chordSizes = append(report.chordSizes, len(c.Notes))
		report.chordKeys[chord.CreateChordKey(c.Notes)]++
	}
	return report, nil
}

func printReport(r fileReport) {
	fmt.Printf("tracks: %v\n", r.numTracks)
	fmt.Printf("notes: %v\n", r.numNotes)
	fmt.Printf("length: %.3fs\n", r.lengthSeconds)
	if r.numNotes > 0 {
		fmt.Printf("pitch range: %v (%v) .. %v (%v)\n", pitch.Name(r.lowest), r.lowest, pitch.Name(r.highest), r.highest)
		fmt.Printf("velocity range: %v .. %v\n", r.minVelocity, r.maxVelocity)
	}
	fmt.Printf("chords: %v\n", r.numChords)
	if r.numChords > 0 {
		fmt.Printf("average chord size: %.2f\n", float64(util.Sum(r.chordSizes))/float64(r.numChords))
		fmt.Printf("distinct chords: %v\n", len(r.chordKeys))
		for _, key := range util.GetKeysSorted(r.chordKeys) {
			fmt.Printf("  %v x%v\n", key, r.chordKeys[key])
		}
	}
}
