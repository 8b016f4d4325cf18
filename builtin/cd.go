package builtin

import (
	"context"
	"errors"

	"lesiw.io/fs"
	"lesiw.io/fs/path"
	"lesiw.io/terminal"
	"lesiw.io/terminal/internal/sh"
)

var (
	// ErrNoParent is returned by cd .. at the root of a filesystem.
	ErrNoParent = errors.New("no parent directory")

	// ErrNoDir is returned by cd when the target is missing or is not a
	// directory.
	ErrNoDir = errors.New("no such directory")
)

// cd changes the working directory.
//
//	cd         the home directory
//	cd ..      the parent of the working directory
//	cd <path>  path, relative to the working directory unless absolute
//
// On failure the working directory is unchanged.
func (s *Session) cd(ctx context.Context, args ...string) terminal.Buffer {
	switch {
	case len(args) < 2:
		s.dir = s.home
	case args[1] == "..":
		parent := path.Dir(s.dir)
		if parent == s.dir {
			return fail(args, "cd: %s: %w", s.dir, ErrNoParent)
		}
		s.dir = parent
	default:
		target := s.resolve(args[1])
		info, err := fs.Stat(ctx, s.fsys, target)
		if err != nil || !info.IsDir() {
			return fail(args, "cd: %s: %w", args[1], ErrNoDir)
		}
		s.dir = target
	}
	return output(sh.String(args...))
}
