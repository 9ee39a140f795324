// Package output hands finished timelines to their destinations and reports
// the outcome.
package output

import (
	"context"
	"fmt"
	"os"

	"github.com/jsphweid/automidi/constants"
	"github.com/jsphweid/automidi/file"
	"github.com/jsphweid/automidi/logger"
	"github.com/jsphweid/automidi/midi"
	"github.com/jsphweid/automidi/model"
	"github.com/jsphweid/automidi/upload"
	"github.com/jsphweid/automidi/util"
)

type Result struct {
	// local file, if one was written
	Path string
	// remote location, if the file was uploaded
	Location string
	Stats    midi.EncodeStats
}

type Writer interface {
	Write(ctx context.Context, name string, tl model.Timeline, meta model.SongMeta) (Result, error)
}

// Notifier surfaces the outcome of a run to whoever asked for it.
type Notifier interface {
	Success(res Result)
	Failure(err error)
}

type FileWriter struct {
	Dir string
}

func (w FileWriter) Write(_ context.Context, name string, tl model.Timeline, meta model.SongMeta) (Result, error) {
	dat, stats, err := midi.Bytes(tl, meta)
	if err != nil {
		return Result{}, err
	}
	if err := util.EnsureDir(w.Dir); err != nil {
		return Result{}, err
	}
	path := file.OutputPath(w.Dir, name)
	if err := os.WriteFile(path, dat, 0644); err != nil {
		return Result{}, fmt.Errorf("write failed for %v: %w", path, err)
	}
	return Result{Path: path, Stats: stats}, nil
}

type S3Writer struct {
	Uploader upload.Uploader
}

func (w S3Writer) Write(ctx context.Context, name string, tl model.Timeline, meta model.SongMeta) (Result, error) {
	dat, stats, err := midi.Bytes(tl, meta)
	if err != nil {
		return Result{}, err
	}
	location, err := w.Uploader.Upload(ctx, file.Basename(name)+constants.MidiExt, dat)
	if err != nil {
		return Result{}, err
	}
	return Result{Location: location, Stats: stats}, nil
}

// Multi writes to every destination in order and stops at the first failure.
type Multi []Writer

func (m Multi) Write(ctx context.Context, name string, tl model.Timeline, meta model.SongMeta) (Result, error) {
	var res Result
	for _, w := range m {
		r, err := w.Write(ctx, name, tl, meta)
		if err != nil {
			return res, err
		}
		if r.Path != "" {
			res.Path = r.Path
		}
		if r.Location != "" {
			res.Location = r.Location
		}
		res.Stats = r.Stats
	}
	return res, nil
}

// Deliver writes the timeline and tells n how it went. The name is fixed
// once so every destination agrees on it.
func Deliver(ctx context.Context, w Writer, n Notifier, name string, tl model.Timeline, meta model.SongMeta) (Result, error) {
	name = file.Basename(name)
	res, err := w.Write(ctx, name, tl, meta)
	if err != nil {
		logger.Error("MIDI write failed", err, logger.Fields{"name": name})
		n.Failure(err)
		return res, err
	}
	if res.Stats.Skipped > 0 {
		logger.Warn("Skipped notes outside the MIDI range", logger.Fields{
			"name":    name,
			"skipped": res.Stats.Skipped,
		})
	}
	logger.Info("MIDI file written", logger.Fields{
		"path":     res.Path,
		"location": res.Location,
		"notes":    res.Stats.Notes,
	})
	n.Success(res)
	return res, nil
}
