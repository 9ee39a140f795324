// Package timeline walks song time in note-length steps and decides at each
// step between a rest, a chord and a single melody note.
package timeline

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/jsphweid/automidi/chord"
	"github.com/jsphweid/automidi/constants"
	"github.com/jsphweid/automidi/duration"
	"github.com/jsphweid/automidi/logger"
	"github.com/jsphweid/automidi/meter"
	"github.com/jsphweid/automidi/model"
	"github.com/jsphweid/automidi/scale"
)

// NewRand returns a source owned by a single run. A zero seed uses the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

type Stats struct {
	Steps  int
	Rests  int
	Chords int
	Melody int
}

type Generator struct {
	params model.Params
	rng    *rand.Rand

	// fixed policies only
	stepSeconds float64

	// current scale; rebuilt on melody steps when the pattern is Random
	scaleNotes []model.Pitch

	stats Stats
}

func New(p model.Params, rng *rand.Rand) *Generator {
	return &Generator{params: p, rng: rng}
}

// Generate runs one generation with its own Generator.
func Generate(p model.Params, rng *rand.Rand) (model.Timeline, error) {
	return New(p, rng).Run()
}

func (g *Generator) Stats() Stats {
	return g.stats
}

// Validate checks every parameter the run will use, so a bad name fails
// before any event exists.
func Validate(p model.Params) error {
	if p.BPM <= 0 || p.BPM > constants.MaxBPM {
		return fmt.Errorf("%v bpm, want 1..%v: %w", p.BPM, constants.MaxBPM, model.ErrInvalidTempo)
	}
	if p.SongLengthSeconds <= 0 || p.SongLengthSeconds > constants.MaxSongLengthSeconds {
		return fmt.Errorf("song length %v, want 1..%v: %w", p.SongLengthSeconds, constants.MaxSongLengthSeconds, model.ErrInvalidNumericInput)
	}
	if p.RootPitch < constants.PitchMin || p.RootPitch > constants.PitchMax {
		return fmt.Errorf("root %v: %w", p.RootPitch, model.ErrInvalidPitch)
	}
	if err := checkProbability("chord probability", p.ChordProb); err != nil {
		return err
	}
	if err := checkProbability("rest probability", p.RestProb); err != nil {
		return err
	}
	if !scale.IsValid(p.ScalePattern) {
		return fmt.Errorf("%q: %w", p.ScalePattern, model.ErrInvalidScale)
	}
	if _, err := chord.Steps(p.ChordType); err != nil {
		return err
	}
	if err := duration.Validate(p.NoteLength); err != nil {
		return err
	}
	if p.TimeSignature != "" {
		if _, _, err := meter.Parse(p.TimeSignature); err != nil {
			return err
		}
	}
	return nil
}

func checkProbability(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%v %v is outside [0,1]: %w", name, v, model.ErrInvalidNumericInput)
	}
	return nil
}

func (g *Generator) Run() (model.Timeline, error) {
	p := g.params
	if err := Validate(p); err != nil {
		return nil, err
	}

	notes, err := scale.Build(p.RootPitch, p.ScalePattern, g.rng)
	if err != nil {
		return nil, err
	}
	g.scaleNotes = notes
	g.stats = Stats{}

	if !p.NoteLength.IsRandom() {
		g.stepSeconds, err = g.resolveSeconds()
		if err != nil {
			return nil, err
		}
	}

	length := float64(p.SongLengthSeconds)
	tl := model.Timeline{}
	t := 0.0
	for t < length {
		stepSeconds := g.stepSeconds
		if p.NoteLength.IsRandom() {
			stepSeconds, err = g.resolveSeconds()
			if err != nil {
				return nil, err
			}
		}

		tl, err = g.step(tl, t)
		if err != nil {
			return nil, err
		}

		g.stats.Steps++
		if p.NoteLength.IsRandom() {
			t += stepSeconds
		} else {
			// multiplied rather than summed so fixed steps do not drift
			t = float64(g.stats.Steps) * stepSeconds
		}
	}

	logger.Debug("Generated timeline", logger.Fields{
		"events": len(tl),
		"steps":  g.stats.Steps,
		"rests":  g.stats.Rests,
		"chords": g.stats.Chords,
		"melody": g.stats.Melody,
	})
	return tl, nil
}

func (g *Generator) step(tl model.Timeline, t float64) (model.Timeline, error) {
	p := g.params
	if g.rng.Float64() < p.RestProb {
		g.stats.Rests++
		return tl, nil
	}

	if g.rng.Float64() < p.ChordProb {
		root := g.scaleNotes[g.rng.Intn(len(g.scaleNotes))]
		pitches, err := chord.Build(root, p.ChordType)
		if err != nil {
			return tl, err
		}
		for _, pitch := range pitches {
			evt, err := g.event(pitch, t)
			if err != nil {
				return tl, err
			}
			tl = append(tl, evt)
		}
		g.stats.Chords++
		return tl, nil
	}

	if p.ScalePattern == model.RandomName {
		notes, err := scale.Build(p.RootPitch, p.ScalePattern, g.rng)
		if err != nil {
			return tl, err
		}
		g.scaleNotes = notes
	}
	evt, err := g.event(g.scaleNotes[g.rng.Intn(len(g.scaleNotes))], t)
	if err != nil {
		return tl, err
	}
	g.stats.Melody++
	return append(tl, evt), nil
}

// event builds one note at start. Random policies draw a fresh length for
// every note, chord tones included. The note ends NoteGap before its step
// does; a note no longer than NoteGap keeps half its length instead, so
// End is always after Start.
func (g *Generator) event(pitch model.Pitch, start float64) (model.NoteEvent, error) {
	seconds := g.stepSeconds
	if g.params.NoteLength.IsRandom() {
		var err error
		seconds, err = g.resolveSeconds()
		if err != nil {
			return model.NoteEvent{}, err
		}
	}

	span := seconds - constants.NoteGap
	if seconds <= constants.NoteGap {
		span = seconds / 2
	}
	velocity := constants.VelocityMin + g.rng.Intn(constants.VelocityMax-constants.VelocityMin+1)

	return model.NoteEvent{
		Pitch:    pitch,
		Velocity: uint8(velocity),
		Start:    start,
		End:      start + span,
	}, nil
}

func (g *Generator) resolveSeconds() (float64, error) {
	beats, err := duration.Resolve(g.params.NoteLength, g.rng)
	if err != nil {
		return 0, err
	}
	return duration.ToSeconds(beats, g.params.BPM)
}
