package model

// Pitch is an absolute semitone number, C4 = 60.
type Pitch = int

type NoteEvent struct {
	Pitch    Pitch   `json:"pitch"`
	Velocity uint8   `json:"velocity"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
}

// Timeline is in generation order, which is also non-decreasing by Start.
type Timeline = []NoteEvent

type SongMeta struct {
	RootKey       string
	BPM           int
	TimeSignature string
	Program       uint8
	TrackName     string
}

type Notes = []uint8

// Chord is a set of notes struck at the same instant.
type Chord struct {
	// seconds from the start of the file
	Offset float64
	Notes  Notes
}
