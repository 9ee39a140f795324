package sample

import (
	"gitlab.com/gomidi/midi/v2/smf"
)

func isEndOfTrack(msg smf.Message) bool {
	return len(msg) >= 2 && msg[0] == 0xFF && msg[1] == 0x2F
}

func released(pending map[uint8]int) bool {
	for _, n := range pending {
		if n > 0 {
			return false
		}
	}
	return true
}

// Create cuts an excerpt holding at most maxNotes notes per track that start
// at or after ticksOffset. Events before the offset that are not notes
// (tempo, meter, program) are kept at tick 0. maxNotes <= 0 keeps every note.
func Create(mf *smf.SMF, ticksOffset uint64, maxNotes int) (*smf.SMF, error) {
	res := smf.New()
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks, lastTicks uint64
		var started int
		pending := make(map[uint8]int)

		add := func(at uint64, msg smf.Message) {
			newTrack = append(newTrack, smf.Event{Delta: uint32(at - lastTicks), Message: msg})
			lastTicks = at
		}
		shifted := func() uint64 {
			if absTicks < ticksOffset {
				return 0
			}
			return absTicks - ticksOffset
		}
		full := func() bool {
			return maxNotes > 0 && started >= maxNotes
		}

	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			if isEndOfTrack(evt.Message) {
				continue
			}

			var ch, key, vel uint8
			switch {
			case evt.Message.GetNoteOn(&ch, &key, &vel) && vel > 0:
				if absTicks < ticksOffset || full() {
					continue
				}
				started++
				pending[key]++
				add(shifted(), evt.Message)
			case evt.Message.GetNoteOff(&ch, &key, &vel),
				evt.Message.GetNoteOn(&ch, &key, &vel):
				if pending[key] == 0 {
					continue
				}
				pending[key]--
				add(shifted(), evt.Message)
			default:
				add(shifted(), evt.Message)
			}

			if full() && released(pending) {
				break TrackEventLoop
			}
		}

		newTrack.Close(0)
		if err := res.Add(newTrack); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// TicksPerQuarter returns the file's metric resolution, or 0 for SMPTE timed
// files.
func TicksPerQuarter(mf *smf.SMF) uint64 {
	if mt, ok := mf.TimeFormat.(smf.MetricTicks); ok {
		return uint64(mt)
	}
	return 0
}
