package tags

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

var testNodes = []Node{
	{Name: "lang", Subtags: []string{"go", "rust", "python", "zig"}},
	{Name: "ml"},
	{Name: "systems"},
	{Name: "papers", Subtags: []string{"nlp", "vision", "python"}},
}

func runScripted(t *testing.T, responses string) (*Selection, string) {
	t.Helper()
	var diag bytes.Buffer
	sel, err := Select(testNodes, NewReplay(SplitResponses(responses)), &diag)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	return sel, diag.String()
}

func TestSelectPreservesOrderAndDeduplicates(t *testing.T) {
	sel, _ := runScripted(t, "1,3,1 4,4,1 3,done")
	want := "lang,python,zig,papers,nlp"
	if got := sel.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSelectSubtagImpliesParent(t *testing.T) {
	sel, _ := runScripted(t, "4,2,done")
	names := sel.Names()
	if len(names) == 0 || names[0] != "papers" {
		t.Fatalf("expected parent recorded first, got %#v", names)
	}
	if names[1] != "vision" {
		t.Fatalf("expected subtag after parent, got %#v", names)
	}
}

func TestSelectSkipsInvalidTokens(t *testing.T) {
	sel, diag := runScripted(t, "0 99 abc 2,done")
	if got := sel.String(); got != "ml" {
		t.Fatalf("expected only the valid choice, got %q", got)
	}
	for _, bad := range []string{"0", "99", "abc"} {
		if !strings.Contains(diag, "Invalid choice: "+bad) {
			t.Fatalf("expected a diagnostic for %q, got:\n%s", bad, diag)
		}
	}
}

func TestSelectSubMenuDoneSelectsNothing(t *testing.T) {
	sel, _ := runScripted(t, "1,done,done")
	if got := sel.String(); got != "lang" {
		t.Fatalf("expected just the parent, got %q", got)
	}
}

func TestSelectDoneIsCaseInsensitive(t *testing.T) {
	sel, _ := runScripted(t, "2,DONE")
	if got := sel.String(); got != "ml" {
		t.Fatalf("got %q", got)
	}
}

func TestSelectEmptySelection(t *testing.T) {
	sel, _ := runScripted(t, "done")
	if got := sel.String(); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestSelectExhaustedScriptFails(t *testing.T) {
	var diag bytes.Buffer
	_, err := Select(testNodes, NewReplay(SplitResponses("1")), &diag)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestSelectionAddIsIdempotent(t *testing.T) {
	sel := NewSelection()
	sel.Add("a")
	sel.Add("b")
	sel.Add("a")
	sel.Add("")
	if got := sel.String(); got != "a,b" {
		t.Fatalf("got %q", got)
	}
	if sel.Len() != 2 {
		t.Fatalf("expected 2 names, got %d", sel.Len())
	}
}

func TestWriteMenuFiveEntriesPerLine(t *testing.T) {
	var buf bytes.Buffer
	writeMenu(&buf, []string{"a", "b", "c", "d", "e", "f", "g"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 menu lines, got %d:\n%s", len(lines), buf.String())
	}
	if strings.Count(lines[0], ")") != 5 || strings.Count(lines[1], ")") != 2 {
		t.Fatalf("unexpected layout:\n%s", buf.String())
	}
}
