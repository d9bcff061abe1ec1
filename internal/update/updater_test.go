package update

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/tagsync/internal/config"
	"github.com/handiism/tagsync/internal/csvio"
)

// mp3Payload is junk audio data; the tag writer prepends its own header.
var mp3Payload = bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 128)

func seedFolder(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, mp3Payload, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func albumTable(filenames ...string) *csvio.Table {
	table := &csvio.Table{Columns: []string{"filename", "album_artist"}}
	for _, name := range filenames {
		table.Rows = append(table.Rows, csvio.Row{"filename": name, "album_artist": "Various Artists"})
	}
	return table
}

func TestRunUpdatesAllRows(t *testing.T) {
	root := seedFolder(t, "01 First.mp3", "02 Second.mp3", "03 Third.mp3")
	table := albumTable("01 First.mp3", "02 Second.mp3", "03 Third.mp3")

	u := NewUpdater(config.DefaultSettings(), nil)
	stats, results, err := u.Run(table, root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Total != 3 || stats.Updated != 3 || stats.Failed != 0 {
		t.Errorf("stats = %+v, want 3 updated", stats)
	}
	for _, res := range results {
		if res.Status != StatusUpdated {
			t.Errorf("%s: status %v (%s)", res.Filename, res.Status, res.Detail)
		}
	}
}

func TestRunDryRunMatchesRealStats(t *testing.T) {
	root := seedFolder(t, "01 First.mp3", "02 Second.mp3")
	table := albumTable("01 First.mp3", "02 Second.mp3", "missing.mp3")

	before, err := os.ReadFile(filepath.Join(root, "01 First.mp3"))
	if err != nil {
		t.Fatal(err)
	}

	dry := config.DefaultSettings()
	dry.DryRun = true
	dryStats, _, err := NewUpdater(dry, nil).Run(table, root)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}

	after, err := os.ReadFile(filepath.Join(root, "01 First.mp3"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("dry run modified a file")
	}

	realStats, _, err := NewUpdater(config.DefaultSettings(), nil).Run(table, root)
	if err != nil {
		t.Fatalf("real run: %v", err)
	}
	if dryStats != realStats {
		t.Errorf("dry run stats %+v differ from real run %+v", dryStats, realStats)
	}
}

func TestRunRowStatuses(t *testing.T) {
	root := seedFolder(t, "01 First.mp3")
	table := &csvio.Table{
		Columns: []string{"filename", "title"},
		Rows: []csvio.Row{
			{"filename": "01 First.mp3", "title": "First"},
			{"filename": "missing.mp3", "title": "Gone"},
			{"filename": "", "title": "Nameless"},
			{"filename": "01 First.mp3", "title": ""},
		},
	}

	stats, results, err := NewUpdater(config.DefaultSettings(), nil).Run(table, root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []Status{StatusUpdated, StatusNotFound, StatusSkipped, StatusSkipped}
	for i, res := range results {
		if res.Status != want[i] {
			t.Errorf("row %d: status %v, want %v (%s)", i, res.Status, want[i], res.Detail)
		}
	}
	if stats.Updated != 1 || stats.NotFound != 1 || stats.Skipped != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunUnsupportedExtensionNotIndexed(t *testing.T) {
	root := seedFolder(t, "01 First.mp3")
	// The index only admits supported extensions, so a row naming this file
	// resolves as not found rather than reaching a codec.
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	table := albumTable("notes.txt")

	stats, results, err := NewUpdater(config.DefaultSettings(), nil).Run(table, root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results[0].Status != StatusNotFound {
		t.Errorf("status = %v, want not found (unsupported files are never indexed)", results[0].Status)
	}
	if stats.NotFound != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunRenames(t *testing.T) {
	root := seedFolder(t, "My Song.mp3")
	table := &csvio.Table{
		Columns: []string{"filename", "title", "track_number"},
		Rows: []csvio.Row{
			{"filename": "My Song.mp3", "title": "My Song", "track_number": "3"},
		},
	}

	settings := config.DefaultSettings()
	settings.RenameFiles = true
	stats, results, err := NewUpdater(settings, nil).Run(table, root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Updated != 1 || stats.Renamed != 1 {
		t.Errorf("stats = %+v, want 1 updated 1 renamed", stats)
	}
	if !results[0].Renamed || filepath.Base(results[0].NewPath) != "03 My Song.mp3" {
		t.Errorf("result = %+v", results[0])
	}
	if _, err := os.Stat(filepath.Join(root, "03 My Song.mp3")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "My Song.mp3")); !os.IsNotExist(err) {
		t.Error("old name still present")
	}
}

func TestRunRenameDryRunCounts(t *testing.T) {
	root := seedFolder(t, "My Song.mp3")
	table := &csvio.Table{
		Columns: []string{"filename", "title", "track_number"},
		Rows: []csvio.Row{
			{"filename": "My Song.mp3", "title": "My Song", "track_number": "3"},
		},
	}

	settings := config.DefaultSettings()
	settings.RenameFiles = true
	settings.DryRun = true
	stats, _, err := NewUpdater(settings, nil).Run(table, root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Renamed != 1 {
		t.Errorf("stats = %+v, want the would-be rename counted", stats)
	}
	if _, err := os.Stat(filepath.Join(root, "My Song.mp3")); err != nil {
		t.Errorf("dry run moved the file: %v", err)
	}
}

func TestRunSubdirectoryDisambiguation(t *testing.T) {
	root := seedFolder(t,
		filepath.Join("albumA", "01 Track.mp3"),
		filepath.Join("albumB", "01 Track.mp3"),
	)
	table := &csvio.Table{
		Columns: []string{"filename", "parent_dir", "title"},
		Rows: []csvio.Row{
			{"filename": "01 Track.mp3", "parent_dir": "albumB", "title": "B Side"},
		},
	}

	settings := config.DefaultSettings()
	settings.Recursive = true
	_, results, err := NewUpdater(settings, nil).Run(table, root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results[0].Path != filepath.Join(root, "albumB", "01 Track.mp3") {
		t.Errorf("resolved %q, want the albumB copy", results[0].Path)
	}
	if results[0].Status != StatusUpdated {
		t.Errorf("status = %v (%s)", results[0].Status, results[0].Detail)
	}
}

func TestRunInvalidRoot(t *testing.T) {
	table := albumTable("a.mp3")
	if _, _, err := NewUpdater(config.DefaultSettings(), nil).Run(table, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing input folder")
	}
}
