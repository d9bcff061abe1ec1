package locate

import (
	"os"
	"path/filepath"
	"testing"
)

// musicTree builds root/albumA/01 Track.mp3, root/albumB/01 Track.mp3,
// root/albumB/02 Other.flac, root/cover.jpg, root/top.mp3.
func musicTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := []string{
		filepath.Join(root, "albumA", "01 Track.mp3"),
		filepath.Join(root, "albumB", "01 Track.mp3"),
		filepath.Join(root, "albumB", "02 Other.flac"),
		filepath.Join(root, "cover.jpg"),
		filepath.Join(root, "top.mp3"),
	}
	for _, path := range files {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestBuildRecursive(t *testing.T) {
	root := musicTree(t)
	idx, err := Build(root, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if idx.Len() != 4 {
		t.Errorf("Len = %d, want 4 audio files (jpg excluded)", idx.Len())
	}
}

func TestResolveQualified(t *testing.T) {
	root := musicTree(t)
	idx, err := Build(root, true)
	if err != nil {
		t.Fatal(err)
	}

	a, ok := idx.Resolve("01 Track.mp3", "albumA")
	if !ok || a != filepath.Join(root, "albumA", "01 Track.mp3") {
		t.Errorf("albumA lookup = (%q, %v)", a, ok)
	}
	b, ok := idx.Resolve("01 Track.mp3", "albumB")
	if !ok || b != filepath.Join(root, "albumB", "01 Track.mp3") {
		t.Errorf("albumB lookup = (%q, %v)", b, ok)
	}
}

func TestResolveBareFirstSeenWins(t *testing.T) {
	root := musicTree(t)
	idx, err := Build(root, true)
	if err != nil {
		t.Fatal(err)
	}

	// Lexical traversal visits albumA before albumB.
	path, ok := idx.Resolve("01 Track.mp3", "")
	if !ok || path != filepath.Join(root, "albumA", "01 Track.mp3") {
		t.Errorf("bare lookup = (%q, %v), want first-seen albumA path", path, ok)
	}
}

func TestResolveUnknownParentFallsBack(t *testing.T) {
	root := musicTree(t)
	idx, err := Build(root, true)
	if err != nil {
		t.Fatal(err)
	}

	path, ok := idx.Resolve("02 Other.flac", "no-such-dir")
	if !ok || path != filepath.Join(root, "albumB", "02 Other.flac") {
		t.Errorf("fallback lookup = (%q, %v)", path, ok)
	}
}

func TestResolveCaseInsensitiveLastResort(t *testing.T) {
	root := musicTree(t)
	idx, err := Build(root, true)
	if err != nil {
		t.Fatal(err)
	}

	path, ok := idx.Resolve("TOP.MP3", "")
	if !ok || path != filepath.Join(root, "top.mp3") {
		t.Errorf("case-insensitive lookup = (%q, %v)", path, ok)
	}
}

func TestResolveNotFound(t *testing.T) {
	root := musicTree(t)
	idx, err := Build(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if path, ok := idx.Resolve("missing.mp3", ""); ok {
		t.Errorf("Resolve = (%q, true), want not found", path)
	}
}

func TestBuildSingleLevel(t *testing.T) {
	root := musicTree(t)
	idx, err := Build(root, false)
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 1 {
		t.Errorf("Len = %d, want only the top-level mp3", idx.Len())
	}
	if _, ok := idx.Resolve("01 Track.mp3", ""); ok {
		t.Error("single-level index must not contain subdirectory files")
	}
}

func TestBuildInvalidRoot(t *testing.T) {
	if _, err := Build(filepath.Join(t.TempDir(), "missing"), true); err == nil {
		t.Error("expected error for missing root")
	}
}
