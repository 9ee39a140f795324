package cmd

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/automidi/logger"
	"github.com/jsphweid/automidi/model"
	"github.com/jsphweid/automidi/output"
	"github.com/jsphweid/automidi/timeline"
	"github.com/jsphweid/automidi/upload"
)

// newWriter writes into dir and, when a bucket is configured, uploads too.
func newWriter(dir string, withUpload bool) (output.Writer, error) {
	w := output.Multi{output.FileWriter{Dir: dir}}
	if withUpload && cfg.UploadEnabled() {
		u, err := upload.NewS3Uploader(cfg.S3Bucket, cfg.S3Prefix, cfg.AWSRegion, cfg.S3Endpoint)
		if err != nil {
			return nil, err
		}
		w = append(w, output.S3Writer{Uploader: u})
	}
	return w, nil
}

// generateTimeline runs one generation with its own random source.
func generateTimeline(runID string, p model.Params) (model.Timeline, error) {
	started := time.Now()
	g := timeline.New(p, timeline.NewRand(p.Seed))
	tl, err := g.Run()
	if err != nil {
		logger.Warn("Generation rejected", logger.Fields{"run_id": runID, "error": err.Error()})
		return nil, err
	}
	stats := g.Stats()
	logger.Info("Generation completed", logger.Fields{
		"run_id":      runID,
		"events":      len(tl),
		"chords":      stats.Chords,
		"rests":       stats.Rests,
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return tl, nil
}

func runGeneration(ctx context.Context, p model.Params, w output.Writer, n output.Notifier, meta model.SongMeta) (model.Timeline, output.Result, error) {
	runID := uuid.New().String()
	tl, err := generateTimeline(runID, p)
	if err != nil {
		n.Failure(err)
		return nil, output.Result{}, err
	}
	res, err := output.Deliver(ctx, w, n, p.OutputName, tl, meta)
	return tl, res, err
}
