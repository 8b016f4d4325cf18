// Terminal is a minimal interactive shell with the built-in commands cd,
// pwd, wc, history and exit.
//
// It reads one command line per prompt from standard input until exit is
// run or the input ends. cd changes the shell's own working directory
// only; the directory of the process is left as it was.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"lesiw.io/defers"
	"lesiw.io/fs/osfs"
	"lesiw.io/terminal"
	"lesiw.io/terminal/builtin"
)

var (
	stdin  *os.File  = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	defer defers.Run()
	if err := run(context.Background()); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		defers.Exit(1)
	}
}

func run(ctx context.Context) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to find working directory: %w", err)
	}
	s := builtin.New(osfs.New(), home, dir)
	repl := &terminal.REPL{Machine: s.Shell(), Out: stdout}

	if !interactive() {
		return repl.Run(ctx, terminal.Lines(stdin))
	}
	fd := int(stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set terminal raw mode: %w", err)
	}
	defers.Add(func() { _ = term.Restore(fd, state) })
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{stdin, stdout}, terminal.Prompt)
	repl.Out, repl.NoPrompt = t, true
	return repl.Run(ctx, terminal.ReadLines(t))
}

// interactive reports whether both standard input and standard output are
// attached to a terminal, so that line editing can be offered.
func interactive() bool {
	f, ok := stdout.(*os.File)
	return ok && term.IsTerminal(int(stdin.Fd())) &&
		term.IsTerminal(int(f.Fd()))
}
