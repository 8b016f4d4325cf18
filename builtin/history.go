package builtin

import (
	"context"
	"fmt"

	"lesiw.io/terminal"
	"lesiw.io/terminal/internal/sh"
)

// history prints the log as "<index> <name>" lines, oldest first.
// The running history command is logged after it prints.
func (s *Session) history(_ context.Context, args ...string) terminal.Buffer {
	lines := make([]string, len(s.log))
	for i, e := range s.log {
		lines[i] = fmt.Sprintf("%d %s", e.Index, e.Name)
	}
	return output(sh.String(args...), lines...)
}
