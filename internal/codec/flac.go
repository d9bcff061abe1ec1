package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"

	"github.com/handiism/tagsync/internal/model"
)

// flacFieldMap maps canonical fields to Vorbis comment keys. Vorbis keys are
// case-insensitive; the uppercase form is the conventional one.
var flacFieldMap = map[string]string{
	model.FieldTitle:       "TITLE",
	model.FieldArtist:      "ARTIST",
	model.FieldAlbumArtist: "ALBUMARTIST",
	model.FieldAlbum:       "ALBUM",
	model.FieldGenre:       "GENRE",
	model.FieldTrackNumber: "TRACKNUMBER",
	model.FieldDiscNumber:  "DISCNUMBER",
	model.FieldComposer:    "COMPOSER",
	model.FieldYear:        "DATE",
	model.FieldComment:     "COMMENT",
}

// flacCodec reads and writes the Vorbis comment block of FLAC files.
type flacCodec struct{}

func (flacCodec) Name() string { return "FLAC" }

func (flacCodec) FieldMap() map[string]string { return flacFieldMap }

func (flacCodec) Read(path string) (model.Record, error) {
	rec := model.Record{Filename: filepath.Base(path)}

	f, err := flac.ParseFile(path)
	if err != nil {
		return rec, fmt.Errorf("flac: parse %s: %w", path, err)
	}

	cmt, _ := findVorbisComment(f)
	if cmt == nil {
		// No comment block is a valid, merely untagged, file.
		return rec, nil
	}

	for field, key := range flacFieldMap {
		if values, err := cmt.Get(key); err == nil && len(values) > 0 {
			rec.Set(field, values[0])
		}
	}
	return rec, nil
}

func (flacCodec) Write(path string, rec model.Record, fields []string, opts WriteOptions) ([]string, error) {
	applied := applicable(flacFieldMap, rec, fields)
	if opts.DryRun {
		return applied, nil
	}

	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("flac: parse %s: %w", path, err)
	}

	cmt, idx := findVorbisComment(f)
	if cmt == nil {
		cmt = flacvorbis.New()
	}

	for _, field := range applied {
		key := flacFieldMap[field]
		removeVorbisField(cmt, key)
		if err := cmt.Add(key, rec.Value(field)); err != nil {
			return nil, fmt.Errorf("flac: set %s on %s: %w", key, path, err)
		}
	}

	block := cmt.Marshal()
	if idx >= 0 {
		f.Meta[idx] = &block
	} else {
		f.Meta = append(f.Meta, &block)
	}

	if err := f.Save(path); err != nil {
		return nil, fmt.Errorf("flac: save %s: %w", path, err)
	}
	return applied, nil
}

// findVorbisComment returns the parsed Vorbis comment block and its index in
// f.Meta, or (nil, -1) when the file has none.
func findVorbisComment(f *flac.File) (*flacvorbis.MetaDataBlockVorbisComment, int) {
	for i, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err == nil {
			return cmt, i
		}
	}
	return nil, -1
}

// removeVorbisField drops every existing comment for key so a subsequent Add
// replaces instead of appending. Key comparison is case-insensitive per the
// Vorbis comment spec.
func removeVorbisField(cmt *flacvorbis.MetaDataBlockVorbisComment, key string) {
	kept := make([]string, 0, len(cmt.Comments))
	for _, comment := range cmt.Comments {
		if eq := strings.IndexByte(comment, '='); eq >= 0 && strings.EqualFold(comment[:eq], key) {
			continue
		}
		kept = append(kept, comment)
	}
	cmt.Comments = kept
}
