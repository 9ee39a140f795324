package constants

import (
	"os"
	"path/filepath"
)

// GetMusicDir is where generated files land unless told otherwise.
func GetMusicDir() string {
	path := os.Getenv("AUTOMIDI_MUSIC_DIR")
	if path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "./out"
	}
	return filepath.Join(home, "Music")
}

// Every emitted note is shortened by this many seconds so repeated pitches
// are re-articulated.
const NoteGap = 0.1

const (
	VelocityMin = 40
	VelocityMax = 80
)

// ticks per quarter note in written files
const Resolution = 960

const DefaultTimeSignature = "4/4"

// acoustic grand piano
const DefaultProgram = 0

const MidiExt = ".mid"

// Upper bounds on a single run; generation is synchronous and held in memory.
const (
	MaxBPM               = 1000
	MaxSongLengthSeconds = 3600
)

// MIDI key range.
const (
	PitchMin = 0
	PitchMax = 127
)
