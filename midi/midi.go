package midi

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/jsphweid/automidi/constants"
	"github.com/jsphweid/automidi/meter"
	"github.com/jsphweid/automidi/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type EncodeStats struct {
	Notes int
	// pitches outside 0..127 have no MIDI representation
	Skipped int
}

type tickEvent struct {
	tick     int64
	isOff    bool
	key      uint8
	velocity uint8
}

func secondsToTicks(seconds float64, bpm int) int64 {
	return int64(math.Round(seconds * float64(bpm) / 60.0 * constants.Resolution))
}

// Encode lays the timeline out as a two track SMF: a conductor track with
// tempo and meter and one instrument track on channel 0.
func Encode(tl model.Timeline, meta model.SongMeta) (*smf.SMF, EncodeStats, error) {
	var stats EncodeStats
	if meta.BPM <= 0 {
		return nil, stats, fmt.Errorf("%v bpm: %w", meta.BPM, model.ErrInvalidTempo)
	}
	sig := meta.TimeSignature
	if sig == "" {
		sig = constants.DefaultTimeSignature
	}
	num, denom, err := meter.Parse(sig)
	if err != nil {
		return nil, stats, err
	}

	var events []tickEvent
	for _, evt := range tl {
		if evt.Pitch < 0 || evt.Pitch > 127 {
			stats.Skipped++
			continue
		}
		on := secondsToTicks(evt.Start, meta.BPM)
		off := secondsToTicks(evt.End, meta.BPM)
		if off <= on {
			off = on + 1
		}
		key := uint8(evt.Pitch)
		events = append(events,
			tickEvent{tick: on, key: key, velocity: evt.Velocity},
			tickEvent{tick: off, isOff: true, key: key},
		)
		stats.Notes++
	}

	// releases go first so a repeated pitch is not cut by its own note off
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].isOff && !events[j].isOff
	})

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.Resolution)

	var conductor smf.Track
	conductor.Add(0, smf.MetaMeter(num, denom))
	conductor.Add(0, smf.MetaTempo(float64(meta.BPM)))
	if meta.RootKey != "" {
		conductor.Add(0, smf.MetaText("root "+meta.RootKey))
	}
	conductor.Close(0)
	if err := s.Add(conductor); err != nil {
		return nil, stats, fmt.Errorf("error adding tempo track: %w", err)
	}

	var track smf.Track
	if meta.TrackName != "" {
		track.Add(0, smf.MetaTrackSequenceName(meta.TrackName))
	}
	track.Add(0, gomidi.ProgramChange(0, meta.Program))
	var last int64
	for _, evt := range events {
		delta := uint32(evt.tick - last)
		if evt.isOff {
			track.Add(delta, gomidi.NoteOff(0, evt.key))
		} else {
			track.Add(delta, gomidi.NoteOn(0, evt.key, evt.velocity))
		}
		last = evt.tick
	}
	track.Close(0)
	if err := s.Add(track); err != nil {
		return nil, stats, fmt.Errorf("error adding note track: %w", err)
	}

	return s, stats, nil
}

// Bytes encodes the timeline and serializes it.
func Bytes(tl model.Timeline, meta model.SongMeta) ([]byte, EncodeStats, error) {
	s, stats, err := Encode(tl, meta)
	if err != nil {
		return nil, stats, err
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, stats, fmt.Errorf("error writing midi: %w", err)
	}
	return buf.Bytes(), stats, nil
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("error parsing midi file... %v", r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file... %w", err)
	}
	return Parse(dat)
}

func Parse(dat []byte) (*smf.SMF, error) {
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file... %w", err)
	}
	return res, nil
}

// ReadTimeline pairs note ons with their note offs across all tracks. Notes
// that are never released are dropped.
func ReadTimeline(s *smf.SMF) (model.Timeline, error) {
	if s == nil {
		return nil, errors.New("no midi data")
	}
	tl := model.Timeline{}
	for _, events := range s.Tracks {
		var absTicks int64
		pending := make(map[uint8][]model.NoteEvent)
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				pending[key] = append(pending[key], model.NoteEvent{
					Pitch:    model.Pitch(key),
					Velocity: velocity,
					Start:    seconds(s, absTicks),
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity),
				event.Message.GetNoteOn(&channel, &key, &velocity):
				open := pending[key]
				if len(open) == 0 {
					continue
				}
				evt := open[0]
				pending[key] = open[1:]
				evt.End = seconds(s, absTicks)
				tl = append(tl, evt)
			}
		}
	}

	sort.SliceStable(tl, func(i, j int) bool {
		if tl[i].Start != tl[j].Start {
			return tl[i].Start < tl[j].Start
		}
		return tl[i].Pitch < tl[j].Pitch
	})
	return tl, nil
}

func seconds(s *smf.SMF, absTicks int64) float64 {
	return float64(s.TimeAt(absTicks)) / 1e6
}
