// Package input turns form-style string values into validated generation
// parameters.
package input

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsphweid/automidi/constants"
	"github.com/jsphweid/automidi/model"
	"github.com/jsphweid/automidi/pitch"
	"github.com/jsphweid/automidi/timeline"
)

// Raw holds every field exactly as submitted.
type Raw struct {
	BPM           string
	Length        string
	TimeSignature string
	RootKey       string
	Scale         string
	NoteLength    string
	MinNoteLength string
	MaxNoteLength string
	ChordProb     string
	ChordType     string
	RestProb      string
	Program       string
	OutputName    string
	Seed          string
}

func Defaults() Raw {
	return Raw{
		BPM:           "120",
		Length:        "60",
		TimeSignature: constants.DefaultTimeSignature,
		RootKey:       "C2",
		Scale:         model.RandomName,
		NoteLength:    "Quarter",
		MinNoteLength: "Quarter",
		MaxNoteLength: "Quarter",
		ChordProb:     "0",
		ChordType:     "major",
		RestProb:      "0",
		Program:       strconv.Itoa(constants.DefaultProgram),
		OutputName:    "output",
		Seed:          "0",
	}
}

// WithDefaults fills every empty field from Defaults.
func (r Raw) WithDefaults() Raw {
	d := Defaults()
	fill := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	fill(&r.BPM, d.BPM)
	fill(&r.Length, d.Length)
	fill(&r.TimeSignature, d.TimeSignature)
	fill(&r.RootKey, d.RootKey)
	fill(&r.Scale, d.Scale)
	fill(&r.NoteLength, d.NoteLength)
	fill(&r.MinNoteLength, d.MinNoteLength)
	fill(&r.MaxNoteLength, d.MaxNoteLength)
	fill(&r.ChordProb, d.ChordProb)
	fill(&r.ChordType, d.ChordType)
	fill(&r.RestProb, d.RestProb)
	fill(&r.Program, d.Program)
	fill(&r.OutputName, d.OutputName)
	fill(&r.Seed, d.Seed)
	return r
}

// FromValues reads snake_case keys from a form or query string.
func FromValues(v url.Values) Raw {
	return Raw{
		BPM:           v.Get("bpm"),
		Length:        v.Get("song_length_seconds"),
		TimeSignature: v.Get("time_signature"),
		RootKey:       v.Get("root_pitch"),
		Scale:         v.Get("scale_pattern"),
		NoteLength:    v.Get("note_length"),
		MinNoteLength: v.Get("min_note_length"),
		MaxNoteLength: v.Get("max_note_length"),
		ChordProb:     v.Get("chord_prob"),
		ChordType:     v.Get("chord_type"),
		RestProb:      v.Get("rest_prob"),
		Program:       v.Get("program"),
		OutputName:    v.Get("output_name"),
		Seed:          v.Get("seed"),
	}
}

func parseInt(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%v %q: %w", field, raw, model.ErrInvalidNumericInput)
	}
	return n, nil
}

// parseProbability accepts a fraction ("0.25") or a percentage ("25%").
func parseProbability(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		scale = 100
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%v %q: %w", field, raw, model.ErrInvalidNumericInput)
	}
	return f / scale, nil
}

// Parse converts and validates. Nothing is defaulted here; call WithDefaults
// first if empty fields should fall back.
func Parse(r Raw) (model.Params, error) {
	var p model.Params
	var err error

	if p.BPM, err = parseInt("bpm", r.BPM); err != nil {
		return model.Params{}, err
	}
	if p.SongLengthSeconds, err = parseInt("song length", r.Length); err != nil {
		return model.Params{}, err
	}
	if p.ChordProb, err = parseProbability("chord probability", r.ChordProb); err != nil {
		return model.Params{}, err
	}
	if p.RestProb, err = parseProbability("rest probability", r.RestProb); err != nil {
		return model.Params{}, err
	}
	program, err := parseInt("program", r.Program)
	if err != nil {
		return model.Params{}, err
	}
	if program < 0 || program > 127 {
		return model.Params{}, fmt.Errorf("program %v: %w", program, model.ErrInvalidNumericInput)
	}
	p.Program = uint8(program)
	if strings.TrimSpace(r.Seed) != "" {
		if p.Seed, err = strconv.ParseInt(strings.TrimSpace(r.Seed), 10, 64); err != nil {
			return model.Params{}, fmt.Errorf("seed %q: %w", r.Seed, model.ErrInvalidNumericInput)
		}
	}
	if p.RootPitch, err = pitch.Parse(r.RootKey); err != nil {
		return model.Params{}, err
	}

	p.TimeSignature = strings.TrimSpace(r.TimeSignature)
	p.ScalePattern = r.Scale
	p.ChordType = r.ChordType
	p.NoteLength = model.NoteLengthPolicy{
		Name: r.NoteLength,
		Min:  r.MinNoteLength,
		Max:  r.MaxNoteLength,
	}
	p.OutputName = r.OutputName

	if err := timeline.Validate(p); err != nil {
		return model.Params{}, err
	}
	return p, nil
}

// Meta derives the file metadata that travels with a run's timeline.
func Meta(p model.Params) model.SongMeta {
	sig := p.TimeSignature
	if sig == "" {
		sig = constants.DefaultTimeSignature
	}
	return model.SongMeta{
		RootKey:       pitch.Name(p.RootPitch),
		BPM:           p.BPM,
		TimeSignature: sig,
		Program:       p.Program,
		TrackName:     fmt.Sprintf("%v %v", pitch.Name(p.RootPitch), p.ScalePattern),
	}
}
