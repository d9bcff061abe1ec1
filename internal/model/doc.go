// Package model defines the canonical metadata record shared by every
// format codec and the canonical field names used throughout tagsync.
//
// # Record
//
// Record is the single value type tags are normalized into, whatever
// container they came from:
//
//	rec := model.Record{Filename: "01 Intro.mp3", Title: "Intro"}
//	rec.Set(model.FieldAlbumArtist, "Various Artists")
//	fmt.Println(rec.Value(model.FieldAlbumArtist))
//
// # Field names
//
// The Field* constants double as interchange CSV column names. SupportedTags
// enumerates the tag fields a CSV header may carry; filename and parent_dir
// are structural columns, not tags.
package model
