// Package rename embeds track and disc ordering into audio filenames,
// skipping files whose names already carry it.
package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	trackPrefix     = regexp.MustCompile(`^\d+[\s\-\._]`)
	trackWord       = regexp.MustCompile(`^Track\s+\d+`)
	discTrackPrefix = regexp.MustCompile(`^\d+\-\d+[\s\-\._]`)
	allDigits       = regexp.MustCompile(`^\d+$`)
)

// Decision is the computed outcome for one file. It is derived from the
// current base name and the target numbers, never stored.
type Decision struct {
	// AlreadyNumbered means the base name already starts with a recognizable
	// track (or disc-track) prefix and must not be renamed.
	AlreadyNumbered bool

	// NewName is the new base name (extension excluded) when a rename is
	// called for; empty otherwise.
	NewName string
}

// Decide computes whether base (a filename without extension) needs ordering
// embedded for the given track and optional disc number.
//
// With a disc number, "already numbered" means a disc-track prefix like
// "1-03 "; without one it means a plain leading track number or a
// "Track NN" prefix. A purely numeric track number is zero-padded to two
// digits; anything else passes through unpadded.
func Decide(base, track, disc string) Decision {
	if disc != "" {
		if discTrackPrefix.MatchString(base) {
			return Decision{AlreadyNumbered: true}
		}
	} else if trackPrefix.MatchString(base) || trackWord.MatchString(base) {
		return Decision{AlreadyNumbered: true}
	}

	formatted := track
	if allDigits.MatchString(track) && len(track) < 2 {
		formatted = "0" + track
	}

	prefix := formatted
	if disc != "" {
		prefix = disc + "-" + formatted
	}
	return Decision{NewName: prefix + " " + base}
}

// Renamer performs the filesystem side of a rename decision.
type Renamer struct {
	// DryRun computes and reports new names without renaming anything.
	DryRun bool
}

// Apply renames path to embed track (and optionally disc) ordering, unless
// the name already carries it. It returns the resulting path and whether a
// rename happened (or, in dry-run, would happen).
//
// A failed rename (permission denied, target name already taken) returns
// the original path along with the error so the caller can report it and
// move on; it is never fatal to a batch.
func (r *Renamer) Apply(path, track, disc string) (string, bool, error) {
	if track == "" {
		return path, false, nil
	}

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	decision := Decide(base, track, disc)
	if decision.AlreadyNumbered {
		return path, false, nil
	}

	newName := decision.NewName + ext
	newPath := filepath.Join(dir, newName)
	if r.DryRun {
		return newPath, true, nil
	}

	if _, err := os.Stat(newPath); err == nil {
		return path, false, fmt.Errorf("rename target already exists: %s", newName)
	}
	if err := os.Rename(path, newPath); err != nil {
		return path, false, fmt.Errorf("rename %s: %w", name, err)
	}
	return newPath, true, nil
}
