package note

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"notekit/internal/tags"
)

func pinClock(t *testing.T) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return time.Date(2025, 3, 4, 9, 5, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = orig })
}

func sampleRecord() *Record {
	return &Record{
		Title:        "Vector Indexes",
		FilenameBase: "Vector Indexes!",
		Description:  "HNSW survey notes.",
		URL:          "https://example.com/hnsw",
		Status:       "read",
		Tags:         []string{"ml", "papers"},
	}
}

func TestSanitizeBase(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"My New Note!", "My_New_Note"},
		{"plain", "plain"},
		{"under_score-dash", "under_score-dash"},
		{"tabs\tand/slashes", "tabsandslashes"},
		{"!!!", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := SanitizeBase(c.in); got != c.want {
			t.Errorf("SanitizeBase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFilenameEmptyStemKeepsExtension(t *testing.T) {
	r := &Record{FilenameBase: "!!!"}
	if got := r.Filename(); got != ".md" {
		t.Fatalf("expected the bare .md edge case, got %q", got)
	}
}

func TestRenderGolden(t *testing.T) {
	pinClock(t)
	want := strings.Join([]string{
		"---",
		"id: 202503040905",
		"created_date: 2025-03-04",
		"updated_date: 2025-03-04",
		"---",
		"Status: read",
		"Tags: [[ml]] [[papers]]",
		"---",
		"## Vector Indexes",
		"HNSW survey notes.",
		"",
		"[url](https://example.com/hnsw)",
		"_______",
		"",
		"References",
		"",
		"```yaml",
		"data:",
		"  title: \"Vector Indexes\"",
		"  type: note",
		"  tags: [ml, papers]",
		"  status: read",
		"  notes: |",
		"    # Vector Indexes",
		"",
		"    HNSW survey notes.",
		"```",
		"",
	}, "\n")
	got := string(sampleRecord().Render())
	if got != want {
		t.Fatalf("rendered note mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}

func TestRenderIsByteIdentical(t *testing.T) {
	pinClock(t)
	rec := sampleRecord()
	if !bytes.Equal(rec.Render(), rec.Render()) {
		t.Fatal("two renders of the same record differ")
	}
}

func TestRenderEmptyTags(t *testing.T) {
	pinClock(t)
	rec := sampleRecord()
	rec.Tags = nil
	out := string(rec.Render())
	if !strings.Contains(out, "Tags: \n") {
		t.Fatalf("expected an empty Tags line, got:\n%s", out)
	}
	if !strings.Contains(out, "tags: []") {
		t.Fatalf("expected an empty tags list, got:\n%s", out)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	pinClock(t)
	dir := t.TempDir()
	rec := sampleRecord()

	path, err := rec.WriteFile(dir)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if filepath.Base(path) != "Vector_Indexes.md" {
		t.Fatalf("unexpected filename %q", path)
	}

	info, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if info.ID != "202503040905" {
		t.Errorf("id = %q", info.ID)
	}
	if info.CreatedDate != "2025-03-04" || info.UpdatedDate != "2025-03-04" {
		t.Errorf("dates = %q / %q", info.CreatedDate, info.UpdatedDate)
	}
	if info.Status != "read" {
		t.Errorf("status = %q", info.Status)
	}
	if len(info.Tags) != 2 || info.Tags[0] != "ml" || info.Tags[1] != "papers" {
		t.Errorf("tags = %#v", info.Tags)
	}
	if info.Title != "Vector Indexes" {
		t.Errorf("title = %q", info.Title)
	}

	// No scratch files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the note in %s, found %d entries", dir, len(entries))
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	pinClock(t)
	dir := t.TempDir()
	rec := sampleRecord()
	if _, err := rec.WriteFile(dir); err != nil {
		t.Fatal(err)
	}
	rec.Description = "Second pass."
	path, err := rec.WriteFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "Second pass.") {
		t.Fatal("expected the rewrite to replace the file")
	}
}

func TestParseFileRejectsForeignMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readme.md")
	if err := os.WriteFile(path, []byte("# Hello\n\nNot a note.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(path); err == nil {
		t.Fatal("expected foreign markdown to be rejected")
	}
}

func TestChooseStatusRepromptsUntilValid(t *testing.T) {
	var diag bytes.Buffer
	src := tags.NewReplay([]string{"0", "6", "abc", "2"})
	status, err := ChooseStatus(src, &diag)
	if err != nil {
		t.Fatalf("ChooseStatus: %v", err)
	}
	if status != "read" {
		t.Fatalf("expected read, got %q", status)
	}
	for _, bad := range []string{"0", "6", "abc"} {
		if !strings.Contains(diag.String(), "Invalid choice: "+bad) {
			t.Fatalf("expected a diagnostic for %q", bad)
		}
	}
}

func TestChooseStatusMapsEveryIndex(t *testing.T) {
	for i, want := range Statuses {
		src := tags.NewReplay([]string{strconv.Itoa(i + 1)})
		var diag bytes.Buffer
		got, err := ChooseStatus(src, &diag)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("choice %d: expected %q, got %q", i+1, want, got)
		}
	}
}
