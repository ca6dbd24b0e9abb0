package note

import (
	"bytes"
	_ "embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"notekit/internal/scratch"
)

//go:embed template.md
var noteTemplate string

var tmpl = template.Must(template.New("note").Parse(noteTemplate))

type templateData struct {
	ID          string
	Created     string
	Updated     string
	Title       string
	Description string
	URL         string
	Status      string
	WikiTags    string
	ListTags    string
}

// Render produces the full note document. The output depends only on the
// record and the captured timestamp, so rendering the same record at the
// same clock reading is byte-identical.
func (r *Record) Render() []byte {
	return r.renderAt(timeNow())
}

func (r *Record) renderAt(now time.Time) []byte {
	data := templateData{
		ID:          now.Format("200601021504"),
		Created:     now.Format("2006-01-02"),
		Updated:     now.Format("2006-01-02"),
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Status:      r.Status,
		WikiTags:    WikiLinks(r.Tags),
		ListTags:    strings.Join(r.Tags, ", "),
	}
	var buf bytes.Buffer
	// The template is static and the data is plain strings; execution
	// cannot fail.
	_ = tmpl.Execute(&buf, data)
	return buf.Bytes()
}

// WriteFile renders the record into dir, overwriting any existing file of
// the same name. The write happens in one atomic step so an aborted run
// never leaves a partial document.
func (r *Record) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, r.Filename())
	if err := atomicWrite(path, r.Render(), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func atomicWrite(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, ".tmp-"+scratch.ID())
	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Rename is atomic on same filesystem.
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
