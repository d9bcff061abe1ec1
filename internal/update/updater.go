// Package update drives one synchronization run: interchange rows in,
// located files tagged, optional renames, per-row statuses and aggregate
// statistics out.
package update

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/tagsync/internal/codec"
	"github.com/handiism/tagsync/internal/config"
	"github.com/handiism/tagsync/internal/csvio"
	"github.com/handiism/tagsync/internal/locate"
	"github.com/handiism/tagsync/internal/model"
	"github.com/handiism/tagsync/internal/progress"
	"github.com/handiism/tagsync/internal/rename"
)

// Status is the terminal state of one processed row.
type Status int

const (
	// StatusPending is the initial state; no row ends a run here.
	StatusPending Status = iota

	// StatusSkipped means the row carried nothing to do: an empty filename,
	// or no tag data in any recognized column.
	StatusSkipped

	// StatusNotFound means no indexed file matched the row's filename.
	StatusNotFound

	// StatusUpdated means the codec applied at least the fields present.
	// A rename performed on top still resolves here, annotated on Result.
	StatusUpdated

	// StatusFailed means the codec could not write the file, or its
	// extension is unsupported.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSkipped:
		return "skipped"
	case StatusNotFound:
		return "not found"
	case StatusUpdated:
		return "updated"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the outcome of one row.
type Result struct {
	Filename string
	Status   Status

	// Path is the resolved file path, when resolution succeeded.
	Path string

	// Renamed is set when the rename engine changed (or, in dry-run, would
	// change) the file's name; NewPath then carries the result.
	Renamed bool
	NewPath string

	// Detail is a human-readable explanation for skipped, not-found and
	// failed rows.
	Detail string
}

// Stats aggregates row outcomes for the run summary.
type Stats struct {
	Total    int
	Updated  int
	Renamed  int
	Failed   int
	Skipped  int
	NotFound int
}

func (st *Stats) tally(res Result) {
	st.Total++
	switch res.Status {
	case StatusUpdated:
		st.Updated++
	case StatusFailed:
		st.Failed++
	case StatusSkipped:
		st.Skipped++
	case StatusNotFound:
		st.NotFound++
	}
	if res.Renamed {
		st.Renamed++
	}
}

// Updater synchronizes tag data from an interchange table onto the files of
// a directory tree. Each row's effect is self-contained; nothing is rolled
// back across rows and no state survives the run.
type Updater struct {
	settings *config.Settings
	renamer  *rename.Renamer
	emit     progress.Func
}

// NewUpdater creates an Updater. The progress func may be nil.
func NewUpdater(settings *config.Settings, emit progress.Func) *Updater {
	return &Updater{
		settings: settings,
		renamer:  &rename.Renamer{DryRun: settings.DryRun},
		emit:     emit,
	}
}

// Run indexes root, processes every row of table in order, and returns the
// aggregate statistics plus one Result per row. Only configuration-level
// problems, such as an unusable root directory, return an error; per-row
// failures are folded into statuses.
func (u *Updater) Run(table *csvio.Table, root string) (Stats, []Result, error) {
	index, err := locate.Build(root, u.settings.Recursive)
	if err != nil {
		return Stats{}, nil, err
	}
	u.emit.Emit(progress.LevelVerbose, fmt.Sprintf("found %d audio files in the input folder", index.Len()))

	tagColumns := table.TagColumns()
	u.emit.Emit(progress.LevelVerbose, "found tag columns in CSV: "+strings.Join(tagColumns, ", "))

	var stats Stats
	results := make([]Result, 0, len(table.Rows))
	for _, row := range table.Rows {
		res := u.processRow(row, tagColumns, index)
		stats.tally(res)
		results = append(results, res)
	}
	return stats, results, nil
}

// processRow walks one row through the state machine:
// pending → skipped | not-found | updated | failed.
func (u *Updater) processRow(row csvio.Row, tagColumns []string, index *locate.Index) Result {
	filename := strings.TrimSpace(row[model.FieldFilename])
	if filename == "" {
		u.emit.Emit(progress.LevelWarning, "skipping row with empty filename")
		return Result{Status: StatusSkipped, Detail: "empty filename"}
	}
	res := Result{Filename: filename}

	path, ok := index.Resolve(filename, strings.TrimSpace(row[model.FieldParentDir]))
	if !ok {
		u.emit.Emit(progress.LevelWarning, "file not found: "+filename)
		res.Status = StatusNotFound
		res.Detail = "no matching file in the input folder"
		return res
	}
	res.Path = path

	fields := presentFields(row, tagColumns)
	if len(fields) == 0 {
		u.emit.Emit(progress.LevelInfo, "skipping "+filename+" - no tag data provided")
		res.Status = StatusSkipped
		res.Detail = "no tag data provided"
		return res
	}

	c, err := codec.For(path)
	if err != nil {
		u.emit.Emit(progress.LevelError, "unsupported file type: "+path)
		res.Status = StatusFailed
		res.Detail = err.Error()
		return res
	}

	rec := recordFromRow(filename, row)
	applied, err := c.Write(path, rec, fields, codec.WriteOptions{DryRun: u.settings.DryRun})
	if err != nil {
		u.emit.Emit(progress.LevelError, fmt.Sprintf("error updating %s: %v", filename, err))
		res.Status = StatusFailed
		res.Detail = err.Error()
		return res
	}
	for _, field := range fields {
		if !contains(applied, field) {
			u.emit.Emit(progress.LevelWarning, fmt.Sprintf("could not set %s tag on %s", field, filename))
		}
	}
	res.Status = StatusUpdated

	if u.settings.RenameFiles {
		u.applyRename(row, tagColumns, &res)
	}

	if u.settings.Verbose || u.settings.DryRun {
		u.emit.Emit(progress.LevelSuccess, "updated tags for "+filename)
	}
	return res
}

// applyRename runs the rename engine for an updated row that supplies a
// track number. Rename failure degrades: the update stands, the rename is
// reported and dropped.
func (u *Updater) applyRename(row csvio.Row, tagColumns []string, res *Result) {
	track := ""
	if contains(tagColumns, model.FieldTrackNumber) {
		track = strings.TrimSpace(row[model.FieldTrackNumber])
	}
	if track == "" {
		return
	}
	disc := ""
	if contains(tagColumns, model.FieldDiscNumber) {
		disc = strings.TrimSpace(row[model.FieldDiscNumber])
	}

	newPath, renamed, err := u.renamer.Apply(res.Path, track, disc)
	if err != nil {
		u.emit.Emit(progress.LevelWarning, fmt.Sprintf("error renaming file: %v", err))
		return
	}
	if renamed {
		u.emit.Emit(progress.LevelVerbose, fmt.Sprintf("renaming: %s -> %s", filepath.Base(res.Path), filepath.Base(newPath)))
		res.Renamed = true
		res.NewPath = newPath
	}
}

// presentFields returns the tag columns whose row value is non-empty.
func presentFields(row csvio.Row, tagColumns []string) []string {
	fields := make([]string, 0, len(tagColumns))
	for _, column := range tagColumns {
		if strings.TrimSpace(row[column]) != "" {
			fields = append(fields, column)
		}
	}
	return fields
}

// recordFromRow builds the full target state a codec receives for one row.
func recordFromRow(filename string, row csvio.Row) model.Record {
	rec := model.Record{Filename: filename}
	for _, field := range model.SupportedTags {
		if value, ok := row[field]; ok {
			rec.Set(field, strings.TrimSpace(value))
		}
	}
	return rec
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
