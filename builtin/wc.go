package builtin

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"lesiw.io/fs"
	"lesiw.io/fs/path"
	"lesiw.io/terminal"
	"lesiw.io/terminal/internal/sh"
)

var (
	// ErrUsage is returned by wc when not given exactly one file.
	ErrUsage = errors.New("invalid arguments")

	// ErrNoFile is returned by wc when the file cannot be read.
	ErrNoFile = errors.New("no such file")
)

// Counts is the result of counting a file.
type Counts struct {
	Lines int
	Words int
	Chars int
}

// wc prints "<lines> <words> <chars> <name>" for one file, where name is
// the base name of the file.
func (s *Session) wc(ctx context.Context, args ...string) terminal.Buffer {
	if len(args) != 2 {
		return fail(args, "%w, usage: wc <file name>", ErrUsage)
	}
	name := s.resolve(args[1])
	c, err := s.count(ctx, name)
	if err != nil {
		return fail(args, "wc: %s: %w", args[1], ErrNoFile)
	}
	return output(sh.String(args...), fmt.Sprintf(
		"%d %d %d %s", c.Lines, c.Words, c.Chars, path.Base(name),
	))
}

// count counts the regular file name. Directories are refused, since
// opening one yields an archive of its contents.
func (s *Session) count(ctx context.Context, name string) (Counts, error) {
	info, err := fs.Stat(ctx, s.fsys, name)
	if err != nil {
		return Counts{}, err
	}
	if info.IsDir() {
		return Counts{}, fmt.Errorf("%s: is a directory", name)
	}
	f, err := fs.Open(ctx, s.fsys, name)
	if err != nil {
		return Counts{}, err
	}
	defer func() { _ = f.Close() }()
	return Count(f)
}

// Count counts the characters, words and lines read from r.
//
// Characters are UTF-8 code points. Every space and every newline ends a
// word, so consecutive separators each count and a trailing word with no
// separator after it does not. Every newline ends a line, and trailing
// text after the last newline counts as one more line. Empty input counts
// as one line.
func Count(r io.Reader) (Counts, error) {
	var (
		c       Counts
		br      = bufio.NewReader(r)
		newline bool
	)
	for {
		ch, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return c, err
		}
		c.Chars++
		switch ch {
		case ' ':
			c.Words++
		case '\n':
			c.Words++
			c.Lines++
			newline = true
		default:
			newline = false
		}
	}
	if !newline {
		c.Lines++
	}
	return c, nil
}
