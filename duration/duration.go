// Package duration resolves note-length policies into beats and seconds.
package duration

import (
	"fmt"
	"math/rand"

	"github.com/jsphweid/automidi/model"
)

var names = []string{"Whole", "Half", "Quarter", "Eighth", "Sixteenth"}

var beats = map[string]float64{
	"Whole":     4.0,
	"Half":      2.0,
	"Quarter":   1.0,
	"Eighth":    0.5,
	"Sixteenth": 0.25,
}

// Names lists the fixed lengths, longest first.
func Names() []string {
	return append([]string(nil), names...)
}

func Beats(name string) (float64, error) {
	b, ok := beats[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, model.ErrInvalidDurationPolicy)
	}
	return b, nil
}

// Validate checks every name the policy refers to without drawing anything.
func Validate(policy model.NoteLengthPolicy) error {
	if !policy.IsRandom() {
		_, err := Beats(policy.Name)
		return err
	}
	if policy.Min == "" || policy.Max == "" {
		return fmt.Errorf("random length needs a min and a max: %w", model.ErrInvalidDurationPolicy)
	}
	if _, err := Beats(policy.Min); err != nil {
		return fmt.Errorf("min: %w", err)
	}
	if _, err := Beats(policy.Max); err != nil {
		return fmt.Errorf("max: %w", err)
	}
	return nil
}

// Resolve returns a length in beats. A random policy draws uniformly between
// its bounds on every call; Min > Max is treated as the swapped interval.
func Resolve(policy model.NoteLengthPolicy, rng *rand.Rand) (float64, error) {
	if err := Validate(policy); err != nil {
		return 0, err
	}
	if !policy.IsRandom() {
		return beats[policy.Name], nil
	}
	lo, hi := beats[policy.Min], beats[policy.Max]
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + rng.Float64()*(hi-lo), nil
}

func ToSeconds(b float64, bpm int) (float64, error) {
	if bpm <= 0 {
		return 0, fmt.Errorf("%v bpm: %w", bpm, model.ErrInvalidTempo)
	}
	return b * (60.0 / float64(bpm)), nil
}
