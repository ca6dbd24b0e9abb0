package note

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta is the YAML front matter of a generated note.
type Meta struct {
	ID          string `yaml:"id"`
	CreatedDate string `yaml:"created_date"`
	UpdatedDate string `yaml:"updated_date"`
}

// Info is what can be read back out of a generated note file: the front
// matter plus the Status, Tags, and title lines of the body.
type Info struct {
	Meta
	Path   string
	Status string
	Tags   []string
	Title  string
}

var wikiLinkPattern = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// ParseFile reads a generated note back from disk. Markdown files that were
// not produced by this tool fail with ErrNotNote.
func ParseFile(path string) (*Info, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info, err := parseDocument(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	info.Path = path
	return info, nil
}

func parseDocument(b []byte) (*Info, error) {
	s := strings.ReplaceAll(string(b), "\r\n", "\n")
	if !strings.HasPrefix(s, "---\n") {
		return nil, fmt.Errorf("%w: missing front matter", ErrNotNote)
	}
	parts := strings.SplitN(s, "\n---\n", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: unterminated front matter", ErrNotNote)
	}
	yamlPart := strings.TrimPrefix(parts[0], "---\n")
	var meta Meta
	if err := yaml.Unmarshal([]byte(yamlPart), &meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotNote, err)
	}
	if meta.ID == "" || meta.CreatedDate == "" {
		return nil, fmt.Errorf("%w: no note id", ErrNotNote)
	}

	info := &Info{Meta: meta}
	for _, line := range strings.Split(parts[1], "\n") {
		switch {
		case strings.HasPrefix(line, "Status: "):
			info.Status = strings.TrimSpace(strings.TrimPrefix(line, "Status: "))
		case strings.HasPrefix(line, "Tags: "):
			for _, m := range wikiLinkPattern.FindAllStringSubmatch(line, -1) {
				info.Tags = append(info.Tags, strings.TrimSpace(m[1]))
			}
		case strings.HasPrefix(line, "## ") && info.Title == "":
			info.Title = strings.TrimSpace(strings.TrimPrefix(line, "## "))
		}
	}
	return info, nil
}
