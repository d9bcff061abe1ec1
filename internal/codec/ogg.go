package codec

import (
	"fmt"
	"path/filepath"

	"go.senan.xyz/taglib"

	"github.com/handiism/tagsync/internal/model"
)

// oggFieldMap maps canonical fields to the Vorbis comment keys of an OGG
// stream, as TagLib exposes them.
var oggFieldMap = map[string]string{
	model.FieldTitle:       taglib.Title,
	model.FieldArtist:      taglib.Artist,
	model.FieldAlbumArtist: taglib.AlbumArtist,
	model.FieldAlbum:       taglib.Album,
	model.FieldGenre:       taglib.Genre,
	model.FieldTrackNumber: taglib.TrackNumber,
	model.FieldDiscNumber:  taglib.DiscNumber,
	model.FieldComposer:    taglib.Composer,
	model.FieldYear:        taglib.Date,
	model.FieldComment:     taglib.Comment,
}

// oggCodec reads and writes OGG Vorbis comments through the TagLib binding.
// Unlike the FLAC codec, the comments here live inside Ogg pages, which
// TagLib rewrites in place.
type oggCodec struct{}

func (oggCodec) Name() string { return "OGG" }

func (oggCodec) FieldMap() map[string]string { return oggFieldMap }

func (oggCodec) Read(path string) (model.Record, error) {
	return taglibRead(path, "ogg", oggFieldMap)
}

func (oggCodec) Write(path string, rec model.Record, fields []string, opts WriteOptions) ([]string, error) {
	return taglibWrite(path, "ogg", oggFieldMap, rec, fields, opts)
}

// taglibRead is the shared read path for the TagLib-backed codecs.
func taglibRead(path, family string, fieldMap map[string]string) (model.Record, error) {
	rec := model.Record{Filename: filepath.Base(path)}

	raw, err := taglib.ReadTags(path)
	if err != nil {
		return rec, fmt.Errorf("%s: read %s: %w", family, path, err)
	}
	for field, key := range fieldMap {
		if values := raw[key]; len(values) > 0 && values[0] != "" {
			rec.Set(field, values[0])
		}
	}
	return rec, nil
}

// taglibWrite is the shared write path for the TagLib-backed codecs. Only
// the provided keys are replaced; every other property is left alone.
func taglibWrite(path, family string, fieldMap map[string]string, rec model.Record, fields []string, opts WriteOptions) ([]string, error) {
	applied := applicable(fieldMap, rec, fields)
	if opts.DryRun {
		return applied, nil
	}

	tags := make(map[string][]string, len(applied))
	for _, field := range applied {
		tags[fieldMap[field]] = []string{rec.Value(field)}
	}

	if err := taglib.WriteTags(path, tags, 0); err != nil {
		return nil, fmt.Errorf("%s: write %s: %w", family, path, err)
	}
	return applied, nil
}
