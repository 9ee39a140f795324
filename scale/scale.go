// Package scale builds ascending pitch sets from named interval patterns.
package scale

import (
	"fmt"
	"math/rand"

	"github.com/jsphweid/automidi/model"
)

type Pattern struct {
	Name  string
	Steps []int
}

// The order is fixed so a seeded Random pick is reproducible.
var patterns = []Pattern{
	{"Major", []int{2, 2, 1, 2, 2, 2, 1}},
	{"Minor", []int{2, 1, 2, 2, 1, 2, 2}},
	{"Dorian", []int{2, 1, 2, 2, 2, 1, 2}},
	{"Phrygian", []int{1, 2, 2, 2, 1, 2, 2}},
	{"Lydian", []int{2, 2, 2, 1, 2, 2, 1}},
	{"Mixolydian", []int{2, 2, 1, 2, 2, 1, 2}},
	{"Locrian", []int{1, 2, 2, 1, 2, 2, 2}},
	{"Major Pentatonic", []int{2, 2, 3, 2, 3}},
	{"Minor Pentatonic", []int{3, 2, 2, 3, 2}},
	{"Harmonic Minor", []int{2, 1, 2, 2, 1, 3, 1}},
	{"Melodic Minor", []int{2, 1, 2, 2, 2, 2, 1}},
	{"Whole Tone", []int{2, 2, 2, 2, 2, 2}},
}

// Names lists the concrete patterns in table order followed by "Random".
func Names() []string {
	res := make([]string, 0, len(patterns)+1)
	for _, p := range patterns {
		res = append(res, p.Name)
	}
	return append(res, model.RandomName)
}

func lookup(name string) (Pattern, bool) {
	for _, p := range patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// IsValid reports whether name is a concrete pattern or "Random".
func IsValid(name string) bool {
	if name == model.RandomName {
		return true
	}
	_, ok := lookup(name)
	return ok
}

// Steps returns a copy of the steps of a concrete pattern.
func Steps(name string) ([]int, error) {
	p, ok := lookup(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, model.ErrInvalidScale)
	}
	return append([]int(nil), p.Steps...), nil
}

// Resolve turns name into a concrete pattern. "Random" picks uniformly among
// the concrete patterns and never yields itself.
func Resolve(name string, rng *rand.Rand) (Pattern, error) {
	if name == model.RandomName {
		return patterns[rng.Intn(len(patterns))], nil
	}
	p, ok := lookup(name)
	if !ok {
		return Pattern{}, fmt.Errorf("%q: %w", name, model.ErrInvalidScale)
	}
	return p, nil
}

// Stack starts at root and appends the running sum of steps. There is no
// octave wrap, dedup or sorting.
func Stack(root model.Pitch, steps []int) []model.Pitch {
	res := make([]model.Pitch, 0, len(steps)+1)
	res = append(res, root)
	for _, step := range steps {
		res = append(res, res[len(res)-1]+step)
	}
	return res
}

// Build resolves name (rng is only consulted for "Random") and stacks it on
// root.
func Build(root model.Pitch, name string, rng *rand.Rand) ([]model.Pitch, error) {
	p, err := Resolve(name, rng)
	if err != nil {
		return nil, err
	}
	return Stack(root, p.Steps), nil
}
