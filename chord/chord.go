package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/automidi/model"
	"github.com/jsphweid/automidi/scale"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Type struct {
	Name  string
	Steps []int
}

var types = []Type{
	{"major", []int{4, 3, 5}},
	{"minor", []int{3, 4, 5}},
	{"diminished", []int{3, 3, 6}},
	{"augmented", []int{4, 4, 4}},
	{"dominant seventh", []int{4, 3, 3, 2}},
	{"major seventh", []int{4, 3, 4, 1}},
	{"minor seventh", []int{3, 4, 3, 2}},
	{"half diminished seventh", []int{3, 3, 4, 2}},
	{"minor major seventh", []int{3, 4, 4, 1}},
	{"major sixth", []int{4, 3, 2, 3}},
	{"minor sixth", []int{3, 4, 2, 3}},
	{"dominant ninth", []int{4, 3, 3, 2, 4}},
	{"major ninth", []int{4, 3, 4, 1, 4}},
	{"minor ninth", []int{3, 4, 3, 2, 4}},
	{"dominant eleventh", []int{4, 3, 3, 2, 4, 3}},
	{"major eleventh", []int{4, 3, 4, 1, 4, 3}},
	{"minor eleventh", []int{3, 4, 3, 2, 4, 3}},
	{"dominant thirteenth", []int{4, 3, 3, 2, 4, 3, 4}},
	{"major thirteenth", []int{4, 3, 4, 1, 4, 3, 4}},
	{"minor thirteenth", []int{3, 4, 3, 2, 4, 3, 4}},
	{"suspended second", []int{2, 5, 5}},
	{"suspended fourth", []int{5, 2, 5}},
	{"neapolitan", []int{1, 4, 5}},
	{"lydian", []int{4, 2, 5}},
	{"added ninth", []int{4, 3, 5, 4}},
	{"six nine", []int{4, 3, 2, 3, 4}},
}

func Types() []string {
	res := make([]string, 0, len(types))
	for _, t := range types {
		res = append(res, t.Name)
	}
	return res
}

func Steps(name string) ([]int, error) {
	for _, t := range types {
		if t.Name == name {
			return append([]int(nil), t.Steps...), nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, model.ErrInvalidChordType)
}

// Build stacks the chord type's steps on root. Pitches are not folded into
// an octave or clamped to the MIDI range.
func Build(root model.Pitch, typeName string) ([]model.Pitch, error) {
	steps, err := Steps(typeName)
	if err != nil {
		return nil, err
	}
	return scale.Stack(root, steps), nil
}

func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// GetChords groups note-ons that share an absolute tick. Single notes come
// back as one-note chords; callers filter by size.
func GetChords(s *smf.SMF) []model.Chord {
	tickToNotes := make(map[int64]model.Notes)
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				tickToNotes[absTicks] = append(tickToNotes[absTicks], key)
			}
		}
	}

	ticks := make([]int64, 0, len(tickToNotes))
	for tick := range tickToNotes {
		ticks = append(ticks, tick)
	}
	sort.Slice(ticks, func(i, j int) bool {
		return ticks[i] < ticks[j]
	})

	var chords []model.Chord
	for _, tick := range ticks {
		notes := tickToNotes[tick]
		sort.Slice(notes, func(i, j int) bool {
			return notes[i] < notes[j]
		})
		chords = append(chords, model.Chord{
			Offset: float64(s.TimeAt(tick)) / 1e6,
			Notes:  notes,
		})
	}
	return chords
}
