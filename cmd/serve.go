package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/automidi/chord"
	"github.com/jsphweid/automidi/constants"
	"github.com/jsphweid/automidi/duration"
	"github.com/jsphweid/automidi/file"
	"github.com/jsphweid/automidi/input"
	"github.com/jsphweid/automidi/logger"
	"github.com/jsphweid/automidi/meter"
	"github.com/jsphweid/automidi/midi"
	"github.com/jsphweid/automidi/model"
	"github.com/jsphweid/automidi/output"
	"github.com/jsphweid/automidi/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the generator over HTTP",
	Long:  `Serves POST /generate plus listings of scales, chord types, note lengths and time signatures.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("Could not write response", logger.Fields{"error": err.Error()})
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if model.IsInputError(err) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, model.ErrorResponse{Detail: err.Error()})
}

// httpNotifier answers the request once the file has been written, in the
// format the request asked for.
type httpNotifier struct {
	w      http.ResponseWriter
	runID  string
	name   string
	tl     model.Timeline
	meta   model.SongMeta
	asJSON bool
}

func (n *httpNotifier) Success(res output.Result) {
	filename := res.Path
	if res.Location != "" {
		filename = res.Location
	}
	if !n.asJSON {
		n.w.Header().Set("X-Saved-To", filename)
		writeMidi(n.w, n.runID, n.name, n.tl, n.meta)
		return
	}
	writeJSON(n.w, http.StatusOK, model.GenerateResponse{
		RunId:    n.runID,
		Filename: filename,
		Events:   n.tl,
		Skipped:  res.Stats.Skipped,
	})
}

func (n *httpNotifier) Failure(err error) {
	writeError(n.w, err)
}

func writeMidi(w http.ResponseWriter, runID, name string, tl model.Timeline, meta model.SongMeta) {
	dat, _, err := midi.Bytes(tl, meta)
	if err != nil {
		logger.Error("Could not encode MIDI", err, logger.Fields{"run_id": runID})
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Basename(name)+constants.MidiExt))
	w.Header().Set("X-Run-Id", runID)
	w.Write(dat)
}

// HandleGenerate reads form or query fields. By default the MIDI bytes are
// returned; format=json returns the events instead. save=true writes the
// file to the music directory as well and reports where in X-Saved-To, or in
// the filename field of the JSON body.
func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Could not parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	p, err := input.Parse(input.FromValues(r.Form).WithDefaults())
	if err != nil {
		writeError(w, err)
		return
	}
	meta := input.Meta(p)
	runID := uuid.New().String()
	asJSON := r.Form.Get("format") == "json"

	if r.Form.Get("save") == "true" {
		writer, err := newWriter(cfg.MusicDir, true)
		if err != nil {
			writeError(w, err)
			return
		}
		tl, err := generateTimeline(runID, p)
		if err != nil {
			writeError(w, err)
			return
		}
		n := &httpNotifier{w: w, runID: runID, name: p.OutputName, tl: tl, meta: meta, asJSON: asJSON}
		output.Deliver(r.Context(), writer, n, p.OutputName, tl, meta)
		return
	}

	tl, err := generateTimeline(runID, p)
	if err != nil {
		writeError(w, err)
		return
	}

	if asJSON {
		skipped := 0
		for _, evt := range tl {
			if evt.Pitch < constants.PitchMin || evt.Pitch > constants.PitchMax {
				skipped++
			}
		}
		writeJSON(w, http.StatusOK, model.GenerateResponse{
			RunId:   runID,
			Events:  tl,
			Skipped: skipped,
		})
		return
	}

	writeMidi(w, runID, p.OutputName, tl, meta)
}

func listHandler(names func() []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.ListResponse{Names: names()})
	}
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/generate", HandleGenerate).Methods("POST")
	router.HandleFunc("/scales", listHandler(scale.Names)).Methods("GET")
	router.HandleFunc("/chords", listHandler(chord.Types)).Methods("GET")
	router.HandleFunc("/note-lengths", listHandler(func() []string {
		return append(duration.Names(), model.RandomName)
	})).Methods("GET")
	router.HandleFunc("/time-signatures", listHandler(meter.Names)).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	addr := ":" + cfg.Port
	logger.Info("Starting server", logger.Fields{"addr": addr})
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
