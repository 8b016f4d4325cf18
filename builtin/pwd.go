package builtin

import (
	"context"

	"lesiw.io/terminal"
	"lesiw.io/terminal/internal/sh"
)

func (s *Session) pwd(_ context.Context, args ...string) terminal.Buffer {
	return output(sh.String(args...), s.dir)
}
