package model

const RandomName = "Random"

type NoteLengthPolicy struct {
	Name string
	// only read when Name is RandomName
	Min string
	Max string
}

func (p NoteLengthPolicy) IsRandom() bool {
	return p.Name == RandomName
}

// Params is the complete input of one generation run. It is passed by value
// and never mutated by the generator.
type Params struct {
	BPM               int
	SongLengthSeconds int
	TimeSignature     string
	RootPitch         Pitch
	ScalePattern      string
	NoteLength        NoteLengthPolicy
	ChordProb         float64
	RestProb          float64
	ChordType         string
	Program           uint8
	OutputName        string

	// 0 means seed from the clock
	Seed int64
}
