package midi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/automidi/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meta() model.SongMeta {
	return model.SongMeta{
		RootKey:       "C4",
		BPM:           120,
		TimeSignature: "3/4",
		TrackName:     "automidi",
	}
}

func roundTrip(t *testing.T, tl model.Timeline, m model.SongMeta) model.Timeline {
	dat, _, err := Bytes(tl, m)
	require.NoError(t, err)
	parsed, err := Parse(dat)
	require.NoError(t, err)
	res, err := ReadTimeline(parsed)
	require.NoError(t, err)
	return res
}

func TestEncodeRoundTripsNotes(t *testing.T) {
	tl := model.Timeline{
		{Pitch: 60, Velocity: 40, Start: 0, End: 0.4},
		{Pitch: 64, Velocity: 50, Start: 0.5, End: 0.9},
		{Pitch: 67, Velocity: 80, Start: 0.5, End: 1.4},
	}
	got := roundTrip(t, tl, meta())
	require.Len(t, got, 3)
	for i := range tl {
		assert.Equal(t, tl[i].Pitch, got[i].Pitch)
		assert.Equal(t, tl[i].Velocity, got[i].Velocity)
		assert.InDelta(t, tl[i].Start, got[i].Start, 1e-3)
		assert.InDelta(t, tl[i].End, got[i].End, 1e-3)
	}
}

func TestEncodeRepeatedPitchKeepsBothNotes(t *testing.T) {
	tl := model.Timeline{
		{Pitch: 60, Velocity: 60, Start: 0, End: 0.5},
		{Pitch: 60, Velocity: 61, Start: 0.5, End: 1.0},
	}
	got := roundTrip(t, tl, meta())
	require.Len(t, got, 2)
	assert.InDelta(t, 0.5, got[0].End, 1e-3)
	assert.InDelta(t, 0.5, got[1].Start, 1e-3)
	assert.Equal(t, uint8(61), got[1].Velocity)
}

func TestEncodeSkipsOutOfRangePitches(t *testing.T) {
	tl := model.Timeline{
		{Pitch: 120, Velocity: 60, Start: 0, End: 0.4},
		{Pitch: 131, Velocity: 60, Start: 0, End: 0.4},
		{Pitch: -2, Velocity: 60, Start: 0, End: 0.4},
	}
	_, stats, err := Encode(tl, meta())
	require.NoError(t, err)
	assert.Equal(t, EncodeStats{Notes: 1, Skipped: 2}, stats)
}

func TestEncodeEmptyTimeline(t *testing.T) {
	got := roundTrip(t, model.Timeline{}, meta())
	assert.Empty(t, got)
}

func TestEncodeRejectsBadMeta(t *testing.T) {
	m := meta()
	m.BPM = 0
	_, _, err := Encode(nil, m)
	assert.ErrorIs(t, err, model.ErrInvalidTempo)

	m = meta()
	m.TimeSignature = "4/3"
	_, _, err = Encode(nil, m)
	assert.ErrorIs(t, err, model.ErrInvalidTimeSignature)
}

func TestEncodeUsesTempo(t *testing.T) {
	m := meta()
	m.BPM = 60
	tl := model.Timeline{{Pitch: 62, Velocity: 70, Start: 1.0, End: 1.9}}
	got := roundTrip(t, tl, m)
	require.Len(t, got, 1)
	assert.InDelta(t, 1.0, got[0].Start, 1e-3)
	assert.InDelta(t, 1.9, got[0].End, 1e-3)
}

func TestReadMidiFile(t *testing.T) {
	dat, _, err := Bytes(model.Timeline{{Pitch: 60, Velocity: 60, Start: 0, End: 0.4}}, meta())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "song.mid")
	require.NoError(t, os.WriteFile(path, dat, 0644))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Tracks, 2)
}

func TestReadMidiFileErrors(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "junk.mid")
	require.NoError(t, os.WriteFile(path, []byte("not a midi file"), 0644))
	_, err = ReadMidiFile(path)
	assert.Error(t, err)
}
