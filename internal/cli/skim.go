package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"notekit/internal/pdf"
)

func cmdSkim(args []string) int {
	fs := flag.NewFlagSet("skim", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var nlines int
	fs.IntVar(&nlines, "nlines", pdf.DefaultSkimLines, "Line budget for the description")
	fs.IntVar(&nlines, "n", pdf.DefaultSkimLines, "Line budget (shorthand)")
	if err := fs.Parse(args); err != nil {
		return ExitErr
	}
	if fs.NArg() != 1 {
		errorf("skim: exactly one PDF path is required")
		fmt.Fprintln(os.Stderr, "Usage: notekit skim [--nlines <int>] <pdf>")
		return ExitErr
	}

	if err := pdf.CheckTool(); err != nil {
		errorf("skim: %v", err)
		return ExitErr
	}

	text, err := pdf.ExtractText(fs.Arg(0), pdf.SkimFirstPage, pdf.SkimLastPage)
	if err != nil {
		errorf("skim: %v", err)
		return ExitErr
	}

	if out := pdf.Skim(text, nlines); out != "" {
		fmt.Println(out)
	}
	return ExitOK
}

func cmdExtract(args []string) int {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var pattern, out string
	var first, last int
	fs.StringVar(&pattern, "pattern", "", "File name glob to extract from")
	fs.StringVar(&pattern, "p", "", "File name glob (shorthand)")
	fs.IntVar(&first, "first", pdf.SkimFirstPage, "First page of the range")
	fs.IntVar(&last, "last", pdf.SkimLastPage, "Last page of the range")
	fs.StringVar(&out, "out", "-", "Output target: a file to append to, or - for stdout")
	if err := fs.Parse(args); err != nil {
		return ExitErr
	}
	if pattern == "" || fs.NArg() > 0 {
		errorf("extract: --pattern is required and takes no positional arguments")
		fmt.Fprintln(os.Stderr, "Usage: notekit extract --pattern <glob> [--first <n>] [--last <n>] [--out <path|->]")
		return ExitErr
	}

	if err := pdf.CheckTool(); err != nil {
		errorf("extract: %v", err)
		return ExitErr
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.OpenFile(out, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			errorf("extract: %v", err)
			return ExitErr
		}
		defer f.Close()
		w = f
	}

	if err := pdf.Extract(".", pattern, first, last, w, os.Stderr); err != nil {
		errorf("extract: %v", err)
		return ExitErr
	}
	return ExitOK
}
