package cmd

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jsphweid/automidi/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queueTransport holds events until Flush, like the HTTP transport does.
type queueTransport struct {
	mu      sync.Mutex
	queued  []*sentry.Event
	sent    []*sentry.Event
	flushes int
}

func (q *queueTransport) Configure(sentry.ClientOptions) {}

func (q *queueTransport) SendEvent(e *sentry.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queued = append(q.queued, e)
}

func (q *queueTransport) Flush(time.Duration) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.flushes++
	q.sent = append(q.sent, q.queued...)
	q.queued = nil
	return true
}

func withSentry(t *testing.T) *queueTransport {
	transport := &queueTransport{}
	client, err := sentry.NewClient(sentry.ClientOptions{Transport: transport})
	require.NoError(t, err)
	hub := sentry.CurrentHub()
	prev := hub.Client()
	hub.BindClient(client)
	t.Cleanup(func() { hub.BindClient(prev) })
	return transport
}

func withExit(t *testing.T) *[]int {
	var codes []int
	prev := exit
	exit = func(code int) { codes = append(codes, code) }
	t.Cleanup(func() { exit = prev })
	return &codes
}

func TestExitErrFlushesSentryBeforeExiting(t *testing.T) {
	transport := withSentry(t)
	codes := withExit(t)

	logger.Error("Could not write MIDI file", errors.New("disk full"), logger.Fields{"run_id": "abc"})
	exitErr("output", errors.New("disk full"))

	assert.Equal(t, []int{1}, *codes)
	assert.Equal(t, 1, transport.flushes)
	require.Len(t, transport.sent, 1)
	assert.Empty(t, transport.queued)
	assert.Equal(t, "abc", transport.sent[0].Tags["run_id"])
}

func TestFailWithoutSentryStillExits(t *testing.T) {
	codes := withExit(t)
	hub := sentry.CurrentHub()
	prev := hub.Client()
	hub.BindClient(nil)
	t.Cleanup(func() { hub.BindClient(prev) })

	fail()
	assert.Equal(t, []int{1}, *codes)
}
