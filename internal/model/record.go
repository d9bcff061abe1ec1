package model

// Canonical field names. These are the column names of the interchange CSV
// and the keys every codec's field map translates from.
const (
	FieldAlbum       = "album"
	FieldAlbumArtist = "album_artist"
	FieldArtist      = "artist"
	FieldGenre       = "genre"
	FieldTitle       = "title"
	FieldTrackNumber = "track_number"
	FieldDiscNumber  = "disc_number"
	FieldComposer    = "composer"
	FieldYear        = "year"
	FieldComment     = "comment"

	// FieldFilename identifies the file a record belongs to. It is the one
	// required interchange column and is never written as a tag.
	FieldFilename = "filename"

	// FieldParentDir optionally disambiguates duplicate filenames across
	// subdirectories. Like FieldFilename it is not a tag.
	FieldParentDir = "parent_dir"
)

// SupportedTags lists every canonical tag field, in the order tag columns
// are reported and written.
var SupportedTags = []string{
	FieldAlbum,
	FieldAlbumArtist,
	FieldArtist,
	FieldGenre,
	FieldTitle,
	FieldTrackNumber,
	FieldDiscNumber,
	FieldComposer,
	FieldYear,
	FieldComment,
}

// IsSupportedTag reports whether name is a canonical tag field.
func IsSupportedTag(name string) bool {
	for _, tag := range SupportedTags {
		if tag == name {
			return true
		}
	}
	return false
}

// Record is the format-agnostic metadata value type all codecs translate
// to and from.
//
// Every tag field is a free-form string; absence and empty string are
// equivalent. Year is deliberately not parsed as an integer, since
// containers store free-form date strings. TrackNumber may carry a "current/total"
// form in formats that encode one.
//
// Filename is the bare file name, not a path. It is never empty when the
// record originates from a directory scan, but it may reference a file
// that no longer exists by the time of synchronization; that is a matching
// failure, not an error in the record itself.
type Record struct {
	Filename    string
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Genre       string
	Composer    string
	Comment     string
	Year        string
	TrackNumber string
	DiscNumber  string
}

// Value returns the record's value for a canonical field name.
// Unknown field names yield the empty string.
func (r *Record) Value(field string) string {
	switch field {
	case FieldFilename:
		return r.Filename
	case FieldTitle:
		return r.Title
	case FieldArtist:
		return r.Artist
	case FieldAlbum:
		return r.Album
	case FieldAlbumArtist:
		return r.AlbumArtist
	case FieldGenre:
		return r.Genre
	case FieldComposer:
		return r.Composer
	case FieldComment:
		return r.Comment
	case FieldYear:
		return r.Year
	case FieldTrackNumber:
		return r.TrackNumber
	case FieldDiscNumber:
		return r.DiscNumber
	}
	return ""
}

// Set assigns value to the canonical field name. Unknown names are ignored
// without error, mirroring how unrecognized interchange columns are treated.
func (r *Record) Set(field, value string) {
	switch field {
	case FieldFilename:
		r.Filename = value
	case FieldTitle:
		r.Title = value
	case FieldArtist:
		r.Artist = value
	case FieldAlbum:
		r.Album = value
	case FieldAlbumArtist:
		r.AlbumArtist = value
	case FieldGenre:
		r.Genre = value
	case FieldComposer:
		r.Composer = value
	case FieldComment:
		r.Comment = value
	case FieldYear:
		r.Year = value
	case FieldTrackNumber:
		r.TrackNumber = value
	case FieldDiscNumber:
		r.DiscNumber = value
	}
}

// Fill copies every non-empty tag field of other into fields of r that are
// still empty. Filename is never overwritten. Used to merge a looser read
// strategy's result into a stricter one.
func (r *Record) Fill(other Record) {
	for _, field := range SupportedTags {
		if r.Value(field) == "" {
			if v := other.Value(field); v != "" {
				r.Set(field, v)
			}
		}
	}
}

// HasTagData reports whether any canonical tag field is non-empty.
func (r *Record) HasTagData() bool {
	for _, field := range SupportedTags {
		if r.Value(field) != "" {
			return true
		}
	}
	return false
}
