// Package filename infers track numbers and titles from bare audio file
// names when the tags themselves carry neither.
//
// Recognized shapes, tried in order:
//
//	"01 Title.mp3", "01 - Title.mp3", "01. Title.mp3", "01_Title.mp3"
//	"Track 01 - Title.mp3"
//	"CD1-01 Title.mp3"
//	"Disc 1-01 Title.mp3"
//
// The parser only supplies fields a tag read left empty; callers must not
// let it override a tag actually present in the file.
package filename

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// patterns each capture (track number, raw title). First match wins.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d+)[\s\-\._]+(.+)$`),
	regexp.MustCompile(`^Track\s+(\d+)[\s\-\._]+(.+)$`),
	regexp.MustCompile(`^CD\d+[\-\._](\d+)[\s\-\._]+(.+)$`),
	regexp.MustCompile(`^Disc\s*\d+[\-\._](\d+)[\s\-\._]+(.+)$`),
}

var separators = regexp.MustCompile(`[\-_\.]+`)

// ParseTrackTitle extracts a track number and a cleaned-up title from a bare
// filename. The extension is stripped before matching. When no pattern
// matches, the track number is empty and the whole base name becomes the
// title.
//
// The track number is returned exactly as it appears in the name; padding
// is a rename concern, not a parsing one.
func ParseTrackTitle(name string) (track, title string) {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(base); m != nil {
			return m[1], NormalizeTitle(m[2])
		}
	}
	return "", NormalizeTitle(base)
}

// NormalizeTitle cleans a raw title: surrounding whitespace trimmed,
// separator runs (-, _, .) collapsed to single spaces, and each word
// capitalized.
func NormalizeTitle(raw string) string {
	raw = separators.ReplaceAllString(raw, " ")
	words := strings.Fields(raw)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
