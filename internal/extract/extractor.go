// Package extract runs the mirror path of synchronization: it scans a
// directory tree, decodes each file's native tags into canonical records,
// and fills missing track numbers and titles from the filenames.
package extract

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/tagsync/internal/codec"
	"github.com/handiism/tagsync/internal/config"
	"github.com/handiism/tagsync/internal/filename"
	"github.com/handiism/tagsync/internal/model"
	"github.com/handiism/tagsync/internal/progress"
)

// Extractor scans directories and produces canonical records in traversal
// order. Files are read concurrently up to the configured worker bound;
// ordering of the result is unaffected.
type Extractor struct {
	settings *config.Settings
	emit     progress.Func
}

// NewExtractor creates an Extractor. The progress func may be nil.
func NewExtractor(settings *config.Settings, emit progress.Func) *Extractor {
	return &Extractor{settings: settings, emit: emit}
}

// Run scans dir for supported audio files and returns one record per file.
// An unusable directory is a configuration error; a file whose tags cannot
// be decoded is reported and degrades to a filename-derived record.
func (e *Extractor) Run(ctx context.Context, dir string) ([]model.Record, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a valid directory: %s", dir)
	}

	paths, err := e.collect(dir)
	if err != nil {
		return nil, err
	}

	records := make([]model.Record, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	workers := e.settings.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records[i] = e.processFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// collect lists the supported audio files under dir in deterministic
// (lexical) traversal order.
func (e *Extractor) collect(dir string) ([]string, error) {
	var paths []string
	if !e.settings.Recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !codec.IsSupportedFile(entry.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
		return paths, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !codec.IsSupportedFile(d.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", dir, err)
	}
	return paths, nil
}

// processFile decodes one file's tags and fills the gaps the container left.
// Decoding failure is reported and non-fatal; the record then carries only
// what the filename implies.
func (e *Extractor) processFile(path string) model.Record {
	name := filepath.Base(path)
	rec := model.Record{Filename: name}

	if c, err := codec.For(path); err == nil {
		decoded, err := c.Read(path)
		if err != nil {
			e.emit.Emit(progress.LevelWarning, fmt.Sprintf("error processing %s: %v", path, err))
		} else {
			decoded.Filename = name
			rec = decoded
		}
	}

	// The filename heuristics only supply fields the tag read left empty;
	// they never override a tag actually present in the file.
	if rec.Title == "" || rec.TrackNumber == "" {
		track, title := filename.ParseTrackTitle(name)
		if rec.Title == "" && title != "" {
			rec.Title = title
			e.emit.Emit(progress.LevelVerbose, fmt.Sprintf("using filename as title for: %s -> %s", name, title))
		}
		if rec.TrackNumber == "" && track != "" {
			rec.TrackNumber = track
			e.emit.Emit(progress.LevelVerbose, fmt.Sprintf("using filename as track number for: %s -> %s", name, track))
		}
	}

	e.emit.Emit(progress.LevelVerbose, "processed: "+path)
	return rec
}
