package model

import "errors"

var (
	ErrInvalidScale          = errors.New("invalid scale pattern")
	ErrInvalidChordType      = errors.New("invalid chord type")
	ErrInvalidTempo          = errors.New("invalid tempo")
	ErrInvalidDurationPolicy = errors.New("invalid note length")
	ErrInvalidNumericInput   = errors.New("invalid numeric input")
	ErrInvalidTimeSignature  = errors.New("invalid time signature")
	ErrInvalidPitch          = errors.New("invalid pitch")
)

// IsInputError reports whether err belongs to the input validation taxonomy.
func IsInputError(err error) bool {
	for _, target := range []error{
		ErrInvalidScale,
		ErrInvalidChordType,
		ErrInvalidTempo,
		ErrInvalidDurationPolicy,
		ErrInvalidNumericInput,
		ErrInvalidTimeSignature,
		ErrInvalidPitch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
