package tags

import (
	"bufio"
	"io"
	"strings"
)

// Source yields one line of user input per prompt. The selection loop does
// not care whether the line came from a terminal or a test script.
type Source interface {
	ReadLine() (string, error)
}

type lineReader struct {
	r *bufio.Reader
}

// NewLineReader returns a Source that reads newline-terminated input from r.
func NewLineReader(r io.Reader) Source {
	return &lineReader{r: bufio.NewReader(r)}
}

func (l *lineReader) ReadLine() (string, error) {
	s, err := l.r.ReadString('\n')
	if err != nil && s == "" {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// Replay replays a fixed sequence of scripted responses. Running out of
// responses before the selection loop finishes is an error: it signals a
// malformed script, not a normal user outcome.
type Replay struct {
	responses []string
	next      int
}

func NewReplay(responses []string) *Replay {
	return &Replay{responses: responses}
}

// SplitResponses turns a comma-joined --test-responses value into one
// response per prompted line. A response may contain spaces, so the comma is
// the only separator.
func SplitResponses(s string) []string {
	return strings.Split(s, ",")
}

func (r *Replay) ReadLine() (string, error) {
	if r.next >= len(r.responses) {
		return "", ErrExhausted
	}
	resp := r.responses[r.next]
	r.next++
	return resp, nil
}
