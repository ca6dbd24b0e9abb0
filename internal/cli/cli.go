// Package cli wires the notekit subcommands: note composition, tag
// selection, and PDF skimming.
package cli

import (
	"fmt"
	"os"
)

// Exit codes. Every failure (usage, missing dependency, missing resource)
// exits 1.
const (
	ExitOK  = 0
	ExitErr = 1
)

func Run(args []string) int {
	if len(args) == 0 {
		printHelp()
		return ExitErr
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "help", "--help", "-h":
		printHelp()
		return ExitOK
	case "new":
		return cmdNew(cmdArgs)
	case "tags":
		return cmdTags(cmdArgs)
	case "skim":
		return cmdSkim(cmdArgs)
	case "extract":
		return cmdExtract(cmdArgs)
	case "ls", "list":
		return cmdList(cmdArgs)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printHelp()
		return ExitErr
	}
}

func printHelp() {
	fmt.Print(`notekit — capture research notes as markdown with YAML front matter

Usage:
  notekit <command> [flags]

Commands:
  new      Compose a note: --title/-t, --filename/-f, --description/-d and
           --url/-u are required; --open-code/-c <true|false> (default true)
           controls the editor launch afterwards
  tags     Run the tag selector standalone; prints the comma-joined
           selection on stdout (--tags-file/-t, --test-mode,
           --test-responses)
  skim     Print a short description for a PDF (--nlines/-n, default 6)
  ls       List generated notes in a directory (default .)
  extract  Append page-range text of every PDF matching a glob to a target
           (--pattern/-p, --first, --last, --out <path|->)
  help     Show this help

The tag store is a JSON array of names or {"name", "subtags"} objects,
looked up at all_tags.json unless --tags-file or NOTEKIT_TAGS says
otherwise.
`)
}
