package builtin

import (
	"context"

	"lesiw.io/terminal"
	"lesiw.io/terminal/internal/sh"
)

// exit ends the session. Any arguments are ignored.
func exit(_ context.Context, args ...string) terminal.Buffer {
	return struct {
		terminal.Buffer
		sh.Stringer
	}{
		terminal.Fail(terminal.ErrExit),
		sh.String(args...),
	}
}
