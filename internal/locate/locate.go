// Package locate indexes a directory tree of audio files by filename so
// interchange rows can be matched back to paths, tolerating the same
// filename appearing in multiple subdirectories.
package locate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/tagsync/internal/codec"
)

type qualifiedKey struct {
	name   string
	parent string
}

// Index maps audio filenames to absolute paths. It is rebuilt from a single
// traversal on every run and never persisted.
//
// Each file is keyed twice: under (filename, immediate parent directory
// name) for disambiguation, and under the bare filename for lookups with no
// parent hint. For the bare key the first occurrence in traversal order
// wins; later duplicates do not overwrite it.
type Index struct {
	byQualified map[qualifiedKey]string
	byName      map[string]string
	count       int
}

// Build walks root (recursively or a single level) and indexes every file
// with a supported audio extension. A root that does not exist or is not a
// directory is a configuration error.
func Build(root string, recursive bool) (*Index, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("input folder %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input folder is not a directory: %s", root)
	}

	idx := &Index{
		byQualified: make(map[qualifiedKey]string),
		byName:      make(map[string]string),
	}

	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("read input folder %s: %w", root, err)
		}
		parent := filepath.Base(root)
		for _, entry := range entries {
			if entry.IsDir() || !codec.IsSupportedFile(entry.Name()) {
				continue
			}
			idx.add(entry.Name(), parent, filepath.Join(root, entry.Name()))
		}
		return idx, nil
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !codec.IsSupportedFile(d.Name()) {
			return nil
		}
		idx.add(d.Name(), filepath.Base(filepath.Dir(path)), path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk input folder %s: %w", root, err)
	}
	return idx, nil
}

func (ix *Index) add(name, parent, path string) {
	ix.byQualified[qualifiedKey{name, parent}] = path
	if _, seen := ix.byName[name]; !seen {
		ix.byName[name] = path
	}
	ix.count++
}

// Len returns the number of indexed files.
func (ix *Index) Len() int { return ix.count }

// Resolve maps a requested filename, with an optional parent-directory hint,
// to a single indexed path. Precedence: exact (filename, parent) pair, then
// bare filename, then a case-insensitive scan over all indexed filenames as
// a last resort. Ambiguity is resolved by this order, never reported.
func (ix *Index) Resolve(name, parent string) (string, bool) {
	if parent != "" {
		if path, ok := ix.byQualified[qualifiedKey{name, parent}]; ok {
			return path, true
		}
	}
	if path, ok := ix.byName[name]; ok {
		return path, true
	}
	for indexed, path := range ix.byName {
		if strings.EqualFold(indexed, name) {
			return path, true
		}
	}
	return "", false
}
