// Package relevance filters arbitrary container tag bags down to the fields
// that are meaningful for audio metadata.
//
// When metadata is sourced from a video container rather than an audio file,
// the format-level tag block mixes real music fields with technical noise:
// encoder banners, creation timestamps, brand markers, rotation hints. Filter
// keeps the former and drops the latter, so none of it leaks into a
// canonical record.
package relevance

import "strings"

// allow maps recognized incoming keys (lowercase) to canonical field names.
// Note performer folds into artist, and both date and year land on year.
var allow = map[string]string{
	"title":        "title",
	"artist":       "artist",
	"album":        "album",
	"album_artist": "album_artist",
	"albumartist":  "album_artist",
	"genre":        "genre",
	"track":        "track_number",
	"track_number": "track_number",
	"date":         "year",
	"year":         "year",
	"comment":      "comment",
	"composer":     "composer",
	"performer":    "artist",
}

// deny lists container- and video-specific keys that must never pass, even
// if a future allow entry were to overlap. Checked first.
var deny = map[string]struct{}{
	"major_brand":         {},
	"minor_version":       {},
	"compatible_brands":   {},
	"encoder":             {},
	"encodersettings":     {},
	"encoder_settings":    {},
	"creation_time":       {},
	"location":            {},
	"location-eng":        {},
	"com.android.version": {},
	"handler_name":        {},
	"vendor_id":           {},
	"timecode":            {},
	"rotate":              {},
	"duration":            {},
	"bitrate":             {},
	"fps":                 {},
}

// Filter returns the audio-relevant subset of tags keyed by canonical field
// name. Key matching is case-insensitive, the deny list wins over the allow
// list, values are trimmed, and values empty after trimming are dropped.
func Filter(tags map[string]string) map[string]string {
	out := make(map[string]string)
	for key, value := range tags {
		k := strings.ToLower(key)
		if _, banned := deny[k]; banned {
			continue
		}
		field, ok := allow[k]
		if !ok {
			continue
		}
		v := strings.TrimSpace(value)
		if v == "" {
			continue
		}
		out[field] = v
	}
	return out
}
