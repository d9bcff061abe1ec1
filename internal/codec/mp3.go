package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bogem/id3v2"
	dtag "github.com/dhowden/tag"

	"github.com/handiism/tagsync/internal/model"
)

// id3FieldMap maps canonical fields to ID3v2 frame IDs.
var id3FieldMap = map[string]string{
	model.FieldTitle:       "TIT2",
	model.FieldArtist:      "TPE1",
	model.FieldAlbumArtist: "TPE2",
	model.FieldAlbum:       "TALB",
	model.FieldGenre:       "TCON",
	model.FieldTrackNumber: "TRCK",
	model.FieldDiscNumber:  "TPOS",
	model.FieldComposer:    "TCOM",
	model.FieldYear:        "TYER",
	model.FieldComment:     "COMM",
}

// mp3Codec handles MP3 files via ID3v2 frames, with a generic metadata scan
// as a second read stage for files whose ID3 data is missing or partial.
type mp3Codec struct{}

func (mp3Codec) Name() string { return "MP3" }

func (mp3Codec) FieldMap() map[string]string { return id3FieldMap }

func (mp3Codec) Read(path string) (model.Record, error) {
	rec := model.Record{Filename: filepath.Base(path)}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		// First stage failed outright; the generic scan is the whole read.
		if gerr := readGenericScan(path, &rec); gerr != nil {
			return rec, fmt.Errorf("mp3: read %s: %w", path, err)
		}
		return rec, nil
	}
	defer tag.Close()

	for field, frameID := range id3FieldMap {
		if frameID == "COMM" {
			continue
		}
		if text := tag.GetTextFrame(frameID).Text; text != "" {
			rec.Set(field, text)
		}
	}
	for _, frame := range tag.GetFrames(tag.CommonID("Comments")) {
		if comment, ok := frame.(id3v2.CommentFrame); ok && comment.Text != "" {
			rec.Comment = comment.Text
			break
		}
	}

	// Second stage: a looser scan fills whatever the ID3 frames left empty.
	if rec.Title == "" || rec.Artist == "" || rec.Album == "" || rec.TrackNumber == "" {
		var loose model.Record
		if err := readGenericScan(path, &loose); err == nil {
			rec.Fill(loose)
		}
	}

	return rec, nil
}

func (mp3Codec) Write(path string, rec model.Record, fields []string, opts WriteOptions) ([]string, error) {
	applied := applicable(id3FieldMap, rec, fields)
	if opts.DryRun {
		return applied, nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("mp3: open %s: %w", path, err)
	}
	defer tag.Close()
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	for _, field := range applied {
		value := rec.Value(field)
		switch frameID := id3FieldMap[field]; frameID {
		case "COMM":
			// Comment frames are multi-valued; replace rather than stack.
			tag.DeleteFrames(tag.CommonID("Comments"))
			tag.AddCommentFrame(id3v2.CommentFrame{
				Encoding: id3v2.EncodingUTF8,
				Language: "eng",
				Text:     value,
			})
		default:
			tag.AddTextFrame(frameID, id3v2.EncodingUTF8, value)
		}
	}

	if err := tag.Save(); err != nil {
		return nil, fmt.Errorf("mp3: save %s: %w", path, err)
	}
	return applied, nil
}

// readGenericScan decodes whatever metadata the dhowden/tag sniffer finds,
// filling only fields of rec that are still empty.
func readGenericScan(path string, rec *model.Record) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := dtag.ReadFrom(f)
	if err != nil {
		return err
	}

	var loose model.Record
	loose.Title = m.Title()
	loose.Artist = m.Artist()
	loose.Album = m.Album()
	loose.AlbumArtist = m.AlbumArtist()
	loose.Genre = m.Genre()
	loose.Composer = m.Composer()
	loose.Comment = m.Comment()
	if year := m.Year(); year != 0 {
		loose.Year = strconv.Itoa(year)
	}
	if n, _ := m.Track(); n != 0 {
		loose.TrackNumber = strconv.Itoa(n)
	}
	if n, _ := m.Disc(); n != 0 {
		loose.DiscNumber = strconv.Itoa(n)
	}

	rec.Fill(loose)
	return nil
}
