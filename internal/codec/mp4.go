package codec

import (
	"fmt"
	"path/filepath"
	"strconv"

	mp4tag "github.com/Sorrow446/go-mp4tag"

	"github.com/handiism/tagsync/internal/model"
)

// mp4FieldMap maps canonical fields to MP4 atom identifiers. Track and disc
// numbers live in the trkn/disk atoms as integer pairs carrying a companion
// "total count" value; everything else is a text atom.
var mp4FieldMap = map[string]string{
	model.FieldTitle:       "©nam",
	model.FieldArtist:      "©ART",
	model.FieldAlbumArtist: "aART",
	model.FieldAlbum:       "©alb",
	model.FieldGenre:       "©gen",
	model.FieldComposer:    "©wrt",
	model.FieldYear:        "©day",
	model.FieldComment:     "©cmt",
	model.FieldTrackNumber: "trkn",
	model.FieldDiscNumber:  "disk",
}

// mp4IntegerFields maps the canonical fields whose native atoms require an
// integer to the atom's bit width. A value that does not parse, is negative,
// or overflows the atom is skipped, not a write failure.
var mp4IntegerFields = map[string]int{
	model.FieldTrackNumber: 16,
	model.FieldDiscNumber:  16,
	model.FieldYear:        32,
}

// mp4Codec handles M4A files through iTunes-style MP4 atoms.
type mp4Codec struct{}

func (mp4Codec) Name() string { return "MP4" }

func (mp4Codec) FieldMap() map[string]string { return mp4FieldMap }

func (mp4Codec) Read(path string) (model.Record, error) {
	rec := model.Record{Filename: filepath.Base(path)}

	f, err := mp4tag.Open(path)
	if err != nil {
		return rec, fmt.Errorf("mp4: open %s: %w", path, err)
	}
	defer f.Close()

	tags, err := f.Read()
	if err != nil {
		return rec, fmt.Errorf("mp4: read %s: %w", path, err)
	}

	rec.Title = tags.Title
	rec.Artist = tags.Artist
	rec.Album = tags.Album
	rec.AlbumArtist = tags.AlbumArtist
	rec.Composer = tags.Composer
	rec.Comment = tags.Comment
	rec.Genre = tags.CustomGenre
	if tags.Year != 0 {
		rec.Year = strconv.Itoa(int(tags.Year))
	}
	if tags.TrackNumber != 0 {
		rec.TrackNumber = strconv.Itoa(int(tags.TrackNumber))
	}
	if tags.DiscNumber != 0 {
		rec.DiscNumber = strconv.Itoa(int(tags.DiscNumber))
	}
	return rec, nil
}

func (mp4Codec) Write(path string, rec model.Record, fields []string, opts WriteOptions) ([]string, error) {
	applied := make([]string, 0, len(fields))
	for _, field := range applicable(mp4FieldMap, rec, fields) {
		if bits, ok := mp4IntegerFields[field]; ok {
			n, err := strconv.ParseInt(rec.Value(field), 10, bits)
			if err != nil || n < 0 {
				continue
			}
		}
		applied = append(applied, field)
	}
	if opts.DryRun {
		return applied, nil
	}

	f, err := mp4tag.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mp4: open %s: %w", path, err)
	}
	defer f.Close()

	// Existing tags supply the total-count companions for trkn/disk so a
	// track-number update never clobbers a "3 of 12" total.
	existing, err := f.Read()
	if err != nil {
		existing = &mp4tag.MP4Tags{}
	}

	tags := &mp4tag.MP4Tags{}
	for _, field := range applied {
		value := rec.Value(field)
		switch field {
		case model.FieldTitle:
			tags.Title = value
		case model.FieldArtist:
			tags.Artist = value
		case model.FieldAlbum:
			tags.Album = value
		case model.FieldAlbumArtist:
			tags.AlbumArtist = value
		case model.FieldComposer:
			tags.Composer = value
		case model.FieldComment:
			tags.Comment = value
		case model.FieldGenre:
			tags.CustomGenre = value
		case model.FieldYear:
			year, _ := strconv.ParseInt(value, 10, 32)
			tags.Year = int32(year)
		case model.FieldTrackNumber:
			n, _ := strconv.ParseInt(value, 10, 16)
			tags.TrackNumber = int16(n)
			tags.TrackTotal = existing.TrackTotal
		case model.FieldDiscNumber:
			n, _ := strconv.ParseInt(value, 10, 16)
			tags.DiscNumber = int16(n)
			tags.DiscTotal = existing.DiscTotal
		}
	}

	// The empty delete list means untouched atoms stay as they are.
	if err := f.Write(tags, []string{}); err != nil {
		return nil, fmt.Errorf("mp4: write %s: %w", path, err)
	}
	return applied, nil
}
