package codec

import (
	"go.senan.xyz/taglib"

	"github.com/handiism/tagsync/internal/model"
)

// wmaFieldMap maps canonical fields to the property names TagLib exposes for
// ASF files. On disk these are named string attributes (Title, Author,
// WM/AlbumTitle, WM/AlbumArtist, WM/Genre, WM/TrackNumber, WM/PartOfSet,
// WM/Composer, WM/Year, Description) and numeric fields are stored as plain
// strings.
var wmaFieldMap = map[string]string{
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

// wmaCodec handles WMA files through their ASF attributes.
type wmaCodec struct{}

func (wmaCodec) Name() string { return "WMA" }

func (wmaCodec) FieldMap() map[string]string { return wmaFieldMap }

func (wmaCodec) Read(path string) (model.Record, error) {
	return taglibRead(path, "wma", wmaFieldMap)
}

func (wmaCodec) Write(path string, rec model.Record, fields []string, opts WriteOptions) ([]string, error) {
	return taglibWrite(path, "wma", wmaFieldMap, rec, fields, opts)
}
