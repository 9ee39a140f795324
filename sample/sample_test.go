package sample

import (
	"bytes"
	"testing"

	"github.com/jsphweid/automidi/midi"
	"github.com/jsphweid/automidi/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

// eight quarter notes at 120 bpm, one every 960 ticks
func scaleRun(t *testing.T) *smf.SMF {
	var tl model.Timeline
	for i, p := range []model.Pitch{60, 62, 64, 65, 67, 69, 71, 72} {
		start := float64(i) * 0.5
		tl = append(tl, model.NoteEvent{Pitch: p, Velocity: 60, Start: start, End: start + 0.4})
	}
	dat, _, err := midi.Bytes(tl, model.SongMeta{BPM: 120})
	require.NoError(t, err)
	s, err := midi.Parse(dat)
	require.NoError(t, err)
	return s
}

func reparse(t *testing.T, s *smf.SMF) model.Timeline {
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	parsed, err := midi.Parse(buf.Bytes())
	require.NoError(t, err)
	tl, err := midi.ReadTimeline(parsed)
	require.NoError(t, err)
	return tl
}

func TestCreateTakesNotesAfterOffset(t *testing.T) {
	s := scaleRun(t)
	assert.Equal(t, uint64(960), TicksPerQuarter(s))

	excerpt, err := Create(s, 2*960, 3)
	require.NoError(t, err)

	tl := reparse(t, excerpt)
	require.Len(t, tl, 3)
	assert.Equal(t, []model.Pitch{64, 65, 67}, []model.Pitch{tl[0].Pitch, tl[1].Pitch, tl[2].Pitch})
	assert.InDelta(t, 0.0, tl[0].Start, 1e-3)
	assert.InDelta(t, 0.4, tl[0].End, 1e-3)
	assert.InDelta(t, 1.0, tl[2].Start, 1e-3)
}

func TestCreateWithoutLimitKeepsEverything(t *testing.T) {
	excerpt, err := Create(scaleRun(t), 0, 0)
	require.NoError(t, err)
	assert.Len(t, reparse(t, excerpt), 8)
}
