package cli

import (
	"flag"
	"fmt"
	"os"

	"notekit/internal/tags"
)

func cmdTags(args []string) int {
	fs := flag.NewFlagSet("tags", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var tagsFile string
	var testMode bool
	var testResponses string
	fs.StringVar(&tagsFile, "tags-file", "", "Tag store path (default all_tags.json)")
	fs.StringVar(&tagsFile, "t", "", "Tag store path (shorthand)")
	fs.BoolVar(&testMode, "test-mode", false, "Replay scripted responses instead of reading stdin")
	fs.StringVar(&testResponses, "test-responses", "", "Comma-joined responses, one per prompted line")
	if err := fs.Parse(args); err != nil {
		return ExitErr
	}
	if fs.NArg() > 0 {
		errorf("tags: unexpected argument: %s", fs.Arg(0))
		fmt.Fprintln(os.Stderr, "Usage: notekit tags [--tags-file <path>] [--test-mode --test-responses <r1,r2,...>]")
		return ExitErr
	}
	if testMode && testResponses == "" {
		errorf("tags: --test-mode requires --test-responses")
		return ExitErr
	}
	if !testMode && testResponses != "" {
		errorf("tags: --test-responses requires --test-mode")
		return ExitErr
	}

	nodes, err := tags.LoadStore(tags.ResolveStorePath(tagsFile))
	if err != nil {
		errorf("tags: %v", err)
		return ExitErr
	}

	var src tags.Source
	if testMode {
		src = tags.NewReplay(tags.SplitResponses(testResponses))
	} else {
		src = tags.NewLineReader(os.Stdin)
	}

	sel, err := tags.Select(nodes, src, os.Stderr)
	if err != nil {
		errorf("tags: %v", err)
		return ExitErr
	}

	// The single stdout line is the whole output contract.
	fmt.Println(sel.String())
	return ExitOK
}
