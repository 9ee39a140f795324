package logger

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestFormatFieldsIsSorted(t *testing.T) {
	got := formatFields(Fields{"bpm": 120, "scale": "Major", "length": 4.5})
	assert.Equal(t, "{bpm=120, length=4.50, scale=Major}", got)
	assert.Equal(t, "", formatFields(nil))
}

func TestInfoAndError(t *testing.T) {
	buf := captureLog(t)

	Info("generated", Fields{"events": 8})
	Error("write failed", errors.New("disk full"), Fields{"path": "/tmp/x.mid"})

	assert.Equal(t,
		"[INFO] generated {events=8}\n[ERROR] write failed: disk full {path=/tmp/x.mid}\n",
		buf.String())
}

func TestDebugIsGated(t *testing.T) {
	buf := captureLog(t)

	SetDebug(false)
	Debug("hidden", nil)
	assert.Empty(t, buf.String())

	SetDebug(true)
	t.Cleanup(func() { SetDebug(false) })
	Debug("shown", nil)
	assert.Equal(t, "[DEBUG] shown \n", buf.String())
}
