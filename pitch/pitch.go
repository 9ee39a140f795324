// Package pitch converts between note names such as "C4", "F#3" or "Bb2"
// and absolute semitone numbers (C4 = 60).
package pitch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/automidi/constants"
	"github.com/jsphweid/automidi/model"
)

var sharpNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Name formats p with sharps, e.g. 61 -> "C#4".
func Name(p model.Pitch) string {
	octave := floorDiv(p, 12) - 1
	return fmt.Sprintf("%s%d", sharpNames[p-floorDiv(p, 12)*12], octave)
}

// Parse accepts a note name (letter, any number of '#'/'b' accidentals,
// octave) or a plain semitone number. The result must be a MIDI key.
func Parse(s string) (model.Pitch, error) {
	p, err := parse(s)
	if err != nil {
		return 0, err
	}
	if p < constants.PitchMin || p > constants.PitchMax {
		return 0, fmt.Errorf("%q is outside %v..%v: %w", s, constants.PitchMin, constants.PitchMax, model.ErrInvalidPitch)
	}
	return p, nil
}

func parse(s string) (model.Pitch, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty name: %w", model.ErrInvalidPitch)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	offset, ok := letterOffsets[strings.ToUpper(s[:1])[0]]
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, model.ErrInvalidPitch)
	}
	i := 1
	for ; i < len(s); i++ {
		switch s[i] {
		case '#', 's':
			offset++
			continue
		case 'b', '!':
			offset--
			continue
		}
		break
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, fmt.Errorf("%q has no octave: %w", s, model.ErrInvalidPitch)
	}
	return (octave+1)*12 + offset, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
