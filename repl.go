package terminal

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
)

// Prompt is the default prompt written before each line is read.
const Prompt = "^_^$ "

// REPL reads command lines, runs them on a Machine, and writes their
// output, until a command returns [ErrExit] or the input ends.
type REPL struct {
	// Machine runs each parsed command line.
	Machine Machine

	// Out receives prompts, command output, and diagnostics.
	Out io.Writer

	// Prompt is written to Out before each line is read.
	// If empty, [Prompt] is used.
	Prompt string

	// NoPrompt disables the prompt, for line sources that draw their own.
	NoPrompt bool
}

// Run runs the loop over lines.
//
// Lines that hold no tokens are skipped. A command's failure is reported
// on Out and the loop continues. Run returns nil once a command returns
// ErrExit, without pulling further lines, or when lines is exhausted.
// It returns an error if lines yields one, if Out cannot be written, or
// if ctx is done before the next prompt.
func (r *REPL) Run(
	ctx context.Context, lines iter.Seq2[string, error],
) error {
	next, stop := iter.Pull2(lines)
	defer stop()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.prompt(); err != nil {
			return err
		}
		line, err, ok := next()
		if !ok {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}
		args, ok := Parse(line)
		if !ok {
			continue
		}
		if err := r.run(ctx, args); errors.Is(err, ErrExit) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (r *REPL) prompt() error {
	if r.NoPrompt {
		return nil
	}
	_, err := io.WriteString(r.Out, cmp.Or(r.Prompt, Prompt))
	return err
}

// run executes one command line. It returns ErrExit to end the session,
// or an error if a diagnostic could not be written.
func (r *REPL) run(ctx context.Context, args []string) error {
	err := Exec(ctx, r.Machine, r.Out, args...)
	if err == nil || errors.Is(err, ErrExit) {
		return err
	}
	_, werr := fmt.Fprintln(r.Out, err)
	return werr
}
