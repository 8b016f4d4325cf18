package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// A Machine executes commands.
type Machine interface {
	// Command instantiates a command with the given context and arguments.
	// arg[0] is the command name.
	// The returned Buffer represents the command's execution.
	// Reading to EOF drives command execution to completion.
	Command(ctx context.Context, arg ...string) Buffer
}

// MachineFunc is an adapter to allow ordinary functions to be used as
// Machines. This is similar to http.HandlerFunc.
type MachineFunc func(context.Context, ...string) Buffer

// Command implements the Machine interface.
func (f MachineFunc) Command(ctx context.Context, args ...string) Buffer {
	return f(ctx, args...)
}

// Exec executes a command and streams its output to w.
// It returns the command's error, or the error from writing to w.
func Exec(ctx context.Context, m Machine, w io.Writer, args ...string) error {
	buf := m.Command(ctx, args...)
	trace(buf)
	_, err := io.Copy(w, buf)
	return err
}

// Read executes a command and returns its output as a string.
// All trailing whitespace is stripped from the output.
// For exact output, use [io.ReadAll].
func Read(ctx context.Context, m Machine, args ...string) (string, error) {
	buf := m.Command(ctx, args...)
	trace(buf)
	out, err := io.ReadAll(buf)
	return strings.TrimRightFunc(string(out), unicode.IsSpace), err
}

func trace(buf Buffer) {
	if _, ok := buf.(fmt.Stringer); !ok {
		return
	}
	if s := strings.TrimRight(String(buf), "\n"); s != "" {
		_, _ = fmt.Fprintf(Trace, "%s\n", s)
	}
}
