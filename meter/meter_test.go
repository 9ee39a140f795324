package meter

import (
	"testing"

	"github.com/jsphweid/automidi/model"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	num, denom, err := Parse("12/8")
	assert.NoError(t, err)
	assert.Equal(t, uint8(12), num)
	assert.Equal(t, uint8(8), denom)
}

func TestParseEveryOfferedSignature(t *testing.T) {
	assert.Len(t, Names(), 20)
	for _, sig := range Names() {
		_, denom, err := Parse(sig)
		assert.NoError(t, err, sig)
		assert.Contains(t, []uint8{4, 8}, denom)
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	for _, sig := range []string{"", "4", "4/3", "x/4", "17/16"} {
		_, _, err := Parse(sig)
		assert.ErrorIs(t, err, model.ErrInvalidTimeSignature, sig)
	}
}
