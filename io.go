package terminal

import (
	"errors"
	"io"
	"os"

	"lesiw.io/prefix"
)

var (
	// Trace receives the command line of every command run through
	// [Exec] or [Read]. Set it to [ShTrace] for set -x style output.
	Trace   = io.Discard
	ShTrace = prefix.NewWriter("+ ", stderr)

	stderr io.Writer = os.Stderr
)

// ErrExit is returned by a command that ends the session.
var ErrExit = errors.New("exit")
