// Package codec reads and writes native audio tags for the five supported
// container families, translating each to and from the canonical record.
//
// One codec exists per family (MP3/ID3v2, FLAC and OGG Vorbis comments,
// MP4 atoms, WMA/ASF attributes), selected by file extension:
//
//	c, err := codec.For("/music/01 Intro.mp3")
//	if err != nil {
//	    // errors.Is(err, codec.ErrUnsupportedFormat)
//	}
//	rec, err := c.Read("/music/01 Intro.mp3")
//
// Writes are field-subset updates: only the requested fields change, and a
// field a container cannot represent is skipped rather than failing the
// whole write.
//
//	applied, err := c.Write(path, rec, []string{model.FieldAlbumArtist}, codec.WriteOptions{})
package codec
