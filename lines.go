package terminal

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// Lines returns an iterator over the lines of r, without their line
// terminators. CRLF and CR line endings are treated as LF.
//
// Lines have no length limit. The sequence ends at the end of r. A final
// line with no terminator is still yielded. Any other read error is
// yielded once, with an empty line, and ends the sequence.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(crlfReader(r))
		for {
			line, err := br.ReadString('\n')
			if errors.Is(err, io.EOF) {
				if line != "" {
					yield(line, nil)
				}
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !yield(strings.TrimSuffix(line, "\n"), nil) {
				return
			}
		}
	}
}

// A LineReader reads one line of input at a time, returning [io.EOF] when
// no more lines are available. golang.org/x/term's Terminal is a
// LineReader.
type LineReader interface {
	ReadLine() (string, error)
}

// ReadLines returns an iterator over the lines read from lr.
//
// The sequence ends when lr returns io.EOF. Any other error is yielded
// once, with an empty line, and ends the sequence.
func ReadLines(lr LineReader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			line, err := lr.ReadLine()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}
