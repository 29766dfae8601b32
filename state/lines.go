package state

import (
	"bufio"
	"io"
)

// LineSource is a forward-only iterator over text lines. Lines carry no
// terminator characters. End of input (ok == false) is distinct from an
// empty line; after it, Err reports any underlying read failure.
type LineSource interface {
	Next() (line string, ok bool)
	Err() error
}

// Lines returns a LineSource reading from r.
func Lines(r io.Reader) LineSource {
	return &scannerLines{s: bufio.NewScanner(r)}
}

type scannerLines struct {
	s *bufio.Scanner
}

func (l *scannerLines) Next() (string, bool) {
	if l.s.Scan() {
		return l.s.Text(), true
	}
	return "", false
}

func (l *scannerLines) Err() error {
	return l.s.Err()
}

// SliceLines returns a LineSource over an in-memory line slice.
func SliceLines(lines []string) LineSource {
	return &sliceLines{lines: lines}
}

type sliceLines struct {
	lines []string
	pos   int
}

func (l *sliceLines) Next() (string, bool) {
	if l.pos >= len(l.lines) {
		return "", false
	}
	line := l.lines[l.pos]
	l.pos++
	return line, true
}

func (l *sliceLines) Err() error {
	return nil
}
