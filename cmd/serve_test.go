package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/automidi/config"
	"github.com/jsphweid/automidi/midi"
	"github.com/jsphweid/automidi/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleForm() url.Values {
	v := url.Values{}
	v.Set("bpm", "120")
	v.Set("song_length_seconds", "4")
	v.Set("time_signature", "4/4")
	v.Set("root_pitch", "C4")
	v.Set("scale_pattern", "Major")
	v.Set("note_length", "Quarter")
	v.Set("chord_prob", "0")
	v.Set("rest_prob", "0")
	v.Set("seed", "9")
	return v
}

func post(t *testing.T, query string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate"+query, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w
}

func TestGenerateReturnsMidi(t *testing.T) {
	w := post(t, "", exampleForm())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/midi", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "output.mid")

	s, err := midi.Parse(w.Body.Bytes())
	require.NoError(t, err)
	tl, err := midi.ReadTimeline(s)
	require.NoError(t, err)
	assert.Len(t, tl, 8)
}

func TestGenerateReturnsJSON(t *testing.T) {
	w := post(t, "?format=json", exampleForm())
	require.Equal(t, http.StatusOK, w.Code)

	var res model.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Events, 8)
	assert.NotEmpty(t, res.RunId)
	for i, evt := range res.Events {
		assert.InDelta(t, float64(i)*0.5, evt.Start, 1e-9)
		assert.InDelta(t, evt.Start+0.4, evt.End, 1e-9)
	}
}

func TestGenerateSameSeedSameEvents(t *testing.T) {
	var a, b model.GenerateResponse
	require.NoError(t, json.Unmarshal(post(t, "?format=json", exampleForm()).Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(post(t, "?format=json", exampleForm()).Body.Bytes(), &b))
	assert.Equal(t, a.Events, b.Events)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"bpm":                 "fast",
		"scale_pattern":       "Blues",
		"chord_type":          "power",
		"note_length":         "Breve",
		"song_length_seconds": "2000000000",
		"root_pitch":          "500",
	}
	for field, value := range cases {
		t.Run(field, func(t *testing.T) {
			form := exampleForm()
			form.Set(field, value)
			w := post(t, "", form)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var res model.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.NotEmpty(t, res.Detail)
		})
	}
}

func TestGenerateSavesFile(t *testing.T) {
	prev := cfg
	cfg = &config.Config{MusicDir: t.TempDir()}
	t.Cleanup(func() { cfg = prev })

	form := exampleForm()
	form.Set("output_name", "saved")
	w := post(t, "?save=true&format=json", form)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, filepath.Join(cfg.MusicDir, "saved.mid"), res.Filename)
	assert.Len(t, res.Events, 8)
	_, err := os.Stat(res.Filename)
	assert.NoError(t, err)

	report, err := analyzeFile(res.Filename)
	require.NoError(t, err)
	assert.Equal(t, 8, report.numNotes)
	assert.Equal(t, 0, report.numChords)
	assert.GreaterOrEqual(t, report.lowest, 60)
	assert.LessOrEqual(t, report.highest, 72)
}

func TestGenerateSaveStillReturnsMidiByDefault(t *testing.T) {
	prev := cfg
	cfg = &config.Config{MusicDir: t.TempDir()}
	t.Cleanup(func() { cfg = prev })

	form := exampleForm()
	form.Set("output_name", "kept")
	w := post(t, "?save=true", form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/midi", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Run-Id"))

	saved := filepath.Join(cfg.MusicDir, "kept.mid")
	assert.Equal(t, saved, w.Header().Get("X-Saved-To"))
	onDisk, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, onDisk, w.Body.Bytes())
}

func TestListEndpoints(t *testing.T) {
	for path, want := range map[string]int{
		"/scales":          13,
		"/chords":          26,
		"/note-lengths":    6,
		"/time-signatures": 20,
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		NewRouter().ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, path)

		var res model.ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Len(t, res.Names, want, path)
	}
}
