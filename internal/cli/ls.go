package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"notekit/internal/note"
)

func cmdList(args []string) int {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return ExitErr
	}
	dir := "."
	if fs.NArg() > 1 {
		errorf("ls: at most one directory argument")
		return ExitErr
	}
	if fs.NArg() == 1 {
		dir = fs.Arg(0)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		errorf("ls: %v", err)
		return ExitErr
	}

	var notes []*note.Info
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			continue
		}
		info, err := note.ParseFile(filepath.Join(dir, e.Name()))
		if err != nil {
			// Markdown that is not a notekit document is simply skipped.
			continue
		}
		notes = append(notes, info)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSTATUS\tTAGS\tTITLE")
	for _, n := range notes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			n.ID, n.CreatedDate, n.Status, strings.Join(n.Tags, ","), n.Title)
	}
	_ = w.Flush()
	return ExitOK
}
