package cli

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"notekit/internal/note"
	"notekit/internal/tags"
)

// editorCmd is what gets launched on the generated note when --open-code is
// left enabled.
const editorCmd = "code"

func usageNew() {
	fmt.Fprint(os.Stderr, `Usage:
  notekit new --title <str> --filename <str> --description <str> --url <str> [--open-code <true|false>]

Flags:
  --title, -t        Note title (required)
  --filename, -f     Filename base; sanitized to [A-Za-z0-9_-] plus .md (required)
  --description, -d  Short description (required)
  --url, -u          Source URL (required)
  --open-code, -c    Open the note in the editor afterwards (default true)
`)
}

func cmdNew(args []string) int {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var title, filename, description, url, openCode string
	fs.StringVar(&title, "title", "", "Note title")
	fs.StringVar(&title, "t", "", "Note title (shorthand)")
	fs.StringVar(&filename, "filename", "", "Filename base")
	fs.StringVar(&filename, "f", "", "Filename base (shorthand)")
	fs.StringVar(&description, "description", "", "Short description")
	fs.StringVar(&description, "d", "", "Short description (shorthand)")
	fs.StringVar(&url, "url", "", "Source URL")
	fs.StringVar(&url, "u", "", "Source URL (shorthand)")
	fs.StringVar(&openCode, "open-code", "true", "Open the editor afterwards (true|false)")
	fs.StringVar(&openCode, "c", "true", "Open the editor afterwards (shorthand)")
	if err := fs.Parse(args); err != nil {
		return ExitErr
	}
	if fs.NArg() > 0 {
		errorf("new: unexpected argument: %s", fs.Arg(0))
		usageNew()
		return ExitErr
	}
	required := []struct{ name, value string }{
		{"--title", title},
		{"--filename", filename},
		{"--description", description},
		{"--url", url},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errorf("new: %s is required", f.name)
			usageNew()
			return ExitErr
		}
	}
	open, ok := parseBool(openCode)
	if !ok {
		errorf("new: invalid --open-code value: %q", openCode)
		usageNew()
		return ExitErr
	}

	rec := &note.Record{
		Title:        title,
		FilenameBase: filename,
		Description:  description,
		URL:          url,
	}
	if rec.SanitizedBase() == "" {
		warnf("new: filename %q sanitizes to an empty stem; the note will be written to %q", filename, rec.Filename())
	}

	// Pre-flight the editor dependency before anything interactive or
	// on-disk happens.
	editorPath, lookErr := exec.LookPath(editorCmd)
	if lookErr != nil {
		if open {
			errorf("new: %s is required to open the note but was not found in PATH", editorCmd)
			return ExitErr
		}
		warnf("new: %s not found in PATH; editor launch disabled anyway", editorCmd)
	}

	src := tags.NewLineReader(os.Stdin)

	status, err := note.ChooseStatus(src, os.Stderr)
	if err != nil {
		errorf("new: %v", err)
		return ExitErr
	}
	rec.Status = status

	nodes, err := tags.LoadStore(tags.ResolveStorePath(""))
	if err != nil {
		errorf("new: %v", err)
		return ExitErr
	}
	sel, err := tags.Select(nodes, src, os.Stderr)
	if err != nil {
		errorf("new: %v", err)
		return ExitErr
	}
	rec.Tags = sel.Names()

	path, err := rec.WriteFile(".")
	if err != nil {
		errorf("new: %v", err)
		return ExitErr
	}
	fmt.Println("Created", path)

	if open {
		if err := exec.Command(editorPath, path).Run(); err != nil {
			errorf("new: launching %s: %v", editorCmd, err)
			return ExitErr
		}
	}
	return ExitOK
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
