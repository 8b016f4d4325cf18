package terminal_test

import (
	"errors"
	"io"
	"iter"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"lesiw.io/terminal"
)

func collect(
	t *testing.T, lines iter.Seq2[string, error],
) ([]string, error) {
	t.Helper()
	var got []string
	for line, err := range lines {
		if err != nil {
			return got, err
		}
		got = append(got, line)
	}
	return got, nil
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{{
		name: "lf",
		in:   "pwd\ncd ..\n",
		want: []string{"pwd", "cd .."},
	}, {
		name: "crlf",
		in:   "pwd\r\nhistory\r\n",
		want: []string{"pwd", "history"},
	}, {
		name: "unterminated last line",
		in:   "pwd\nexit",
		want: []string{"pwd", "exit"},
	}, {
		name: "blank lines",
		in:   "\n  \npwd\n",
		want: []string{"", "  ", "pwd"},
	}, {
		name: "empty input",
		in:   "",
		want: nil,
	}, {
		name: "long line",
		in:   "wc " + strings.Repeat("x", 70000) + "\npwd\n",
		want: []string{"wc " + strings.Repeat("x", 70000), "pwd"},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collect(t, terminal.Lines(strings.NewReader(tt.in)))
			if err != nil {
				t.Fatalf("Lines() error = %v", err)
			}
			if !cmp.Equal(tt.want, got) {
				t.Errorf("Lines() mismatch (-want +got):\n%s",
					cmp.Diff(tt.want, got))
			}
		})
	}
}

func TestLinesError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	r := io.MultiReader(
		strings.NewReader("pwd\n"),
		iotest.ErrReader(errBroken),
	)

	got, err := collect(t, terminal.Lines(r))
	if !errors.Is(err, errBroken) {
		t.Errorf("Lines() error = %v, want %v", err, errBroken)
	}
	if want := []string{"pwd"}; !cmp.Equal(want, got) {
		t.Errorf("Lines() mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

type lineReader struct {
	lines []string
	err   error
}

func (lr *lineReader) ReadLine() (string, error) {
	if len(lr.lines) == 0 {
		return "", lr.err
	}
	line := lr.lines[0]
	lr.lines = lr.lines[1:]
	return line, nil
}

func TestReadLines(t *testing.T) {
	lr := &lineReader{lines: []string{"pwd", "exit"}, err: io.EOF}

	got, err := collect(t, terminal.ReadLines(lr))
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if want := []string{"pwd", "exit"}; !cmp.Equal(want, got) {
		t.Errorf("ReadLines() mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestReadLinesError(t *testing.T) {
	errTerm := errors.New("terminal gone")
	lr := &lineReader{lines: []string{"pwd"}, err: errTerm}

	got, err := collect(t, terminal.ReadLines(lr))
	if !errors.Is(err, errTerm) {
		t.Errorf("ReadLines() error = %v, want %v", err, errTerm)
	}
	if want := []string{"pwd"}; !cmp.Equal(want, got) {
		t.Errorf("ReadLines() mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}
