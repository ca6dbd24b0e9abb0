package tags

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrInvalid   = errors.New("invalid")
	ErrExhausted = errors.New("scripted responses exhausted")
)

// menuColumns is how many entries a menu line holds.
const menuColumns = 5

// Selection accumulates chosen tag names, preserving first-seen order and
// suppressing duplicates.
type Selection struct {
	names []string
	seen  map[string]bool
}

func NewSelection() *Selection {
	return &Selection{seen: map[string]bool{}}
}

// Add records name if it has not been selected yet.
func (s *Selection) Add(name string) {
	if name == "" || s.seen[name] {
		return
	}
	s.seen[name] = true
	s.names = append(s.names, name)
}

func (s *Selection) Len() int { return len(s.names) }

// Names returns the selected tags in insertion order.
func (s *Selection) Names() []string {
	return append([]string(nil), s.names...)
}

// String renders the selector's output contract: a single comma-joined line,
// empty when nothing was selected.
func (s *Selection) String() string {
	return strings.Join(s.names, ",")
}

// Select runs the interactive selection loop over nodes, reading input from
// src and writing menus and diagnostics to diag. The returned Selection
// contains no duplicates, and every chosen subtag's parent is also present:
// the parent is recorded before its sub-menu is even offered.
func Select(nodes []Node, src Source, diag io.Writer) (*Selection, error) {
	sel := NewSelection()
	for {
		fmt.Fprintln(diag, `Select tags (space-separated numbers, or "done"):`)
		writeMenu(diag, topNames(nodes))
		line, err := src.ReadLine()
		if err != nil {
			return nil, fmt.Errorf("read selection: %w", err)
		}
		if isDone(line) {
			return sel, nil
		}
		for _, tok := range strings.Fields(line) {
			idx, ok := parseChoice(tok, len(nodes))
			if !ok {
				fmt.Fprintf(diag, "Invalid choice: %s\n", tok)
				continue
			}
			node := nodes[idx]
			sel.Add(node.Name)
			if len(node.Subtags) == 0 {
				continue
			}
			if err := selectSubtags(node, sel, src, diag); err != nil {
				return nil, err
			}
		}
	}
}

// selectSubtags runs the one-shot sub-menu round for a parent tag: one menu,
// one line of input, then control returns to the top-level loop.
func selectSubtags(node Node, sel *Selection, src Source, diag io.Writer) error {
	fmt.Fprintf(diag, "Subtags of %s (space-separated numbers, or \"done\" for none):\n", node.Name)
	writeMenu(diag, node.Subtags)
	line, err := src.ReadLine()
	if err != nil {
		return fmt.Errorf("read subtag selection: %w", err)
	}
	if isDone(line) {
		return nil
	}
	for _, tok := range strings.Fields(line) {
		idx, ok := parseChoice(tok, len(node.Subtags))
		if !ok {
			fmt.Fprintf(diag, "Invalid choice: %s\n", tok)
			continue
		}
		sel.Add(node.Subtags[idx])
	}
	return nil
}

func isDone(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "done")
}

// parseChoice parses tok as a 1-based menu index and returns it 0-based.
func parseChoice(tok string, n int) (int, bool) {
	v, err := strconv.Atoi(tok)
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v - 1, true
}

func topNames(nodes []Node) []string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
	}
	return names
}

// writeMenu renders a numbered menu, menuColumns entries per line.
func writeMenu(w io.Writer, names []string) {
	for i, name := range names {
		fmt.Fprintf(w, "%3d) %-20s", i+1, name)
		if (i+1)%menuColumns == 0 {
			fmt.Fprintln(w)
		}
	}
	if len(names)%menuColumns != 0 {
		fmt.Fprintln(w)
	}
}
