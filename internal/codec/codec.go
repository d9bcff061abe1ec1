package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/tagsync/internal/model"
)

// ErrUnsupportedFormat is returned by For when a file's extension does not
// belong to one of the five supported container families.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// WriteOptions controls the behavior of a codec write.
type WriteOptions struct {
	// DryRun computes and reports the fields that would change without
	// touching the file.
	DryRun bool
}

// Codec translates between a container's native tag representation and the
// canonical record.
//
// Read returns only the fields the container actually carries; everything
// else is left at the empty-string default. Write updates only the
// requested fields; fields absent from the request must never erase
// existing native tags. Both directions work on one file at a time and
// keep no state between calls.
type Codec interface {
	// Name is the container family name, for diagnostics ("MP3", "FLAC", ...).
	Name() string

	// FieldMap is the codec's fixed mapping from canonical field name to
	// the native tag key it reads and writes.
	FieldMap() map[string]string

	// Read decodes the file's native tags into a canonical record.
	// The returned record's Filename is the file's base name.
	Read(path string) (model.Record, error)

	// Write applies the requested fields of rec to the file and returns the
	// canonical names of the fields it actually applied. Fields the codec
	// cannot represent (an unmapped field, or a numeric native slot given a
	// non-numeric value) are dropped from the result; the rest still commit.
	Write(path string, rec model.Record, fields []string, opts WriteOptions) ([]string, error)
}

// codecs maps a lowercase file extension to its container family's codec.
// Every codec is stateless, so the instances are shared.
var codecs = map[string]Codec{
	".mp3":  mp3Codec{},
	".flac": flacCodec{},
	".m4a":  mp4Codec{},
	".ogg":  oggCodec{},
	".wma":  wmaCodec{},
}

// For selects the codec for a path by its extension.
// Returns ErrUnsupportedFormat (wrapped) for anything else.
func For(path string) (Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	c, ok := codecs[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return c, nil
}

// IsSupportedFile reports whether name has one of the supported audio
// extensions. The check is case-insensitive.
func IsSupportedFile(name string) bool {
	_, ok := codecs[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Extensions returns the supported extensions, dot included, in no
// particular order.
func Extensions() []string {
	exts := make([]string, 0, len(codecs))
	for ext := range codecs {
		exts = append(exts, ext)
	}
	return exts
}

// applicable filters the requested fields down to those the field map knows
// and the record carries a non-empty value for. The shared first half of
// every codec's Write.
func applicable(fieldMap map[string]string, rec model.Record, fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, ok := fieldMap[field]; !ok {
			continue
		}
		if rec.Value(field) == "" {
			continue
		}
		out = append(out, field)
	}
	return out
}
