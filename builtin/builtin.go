// Package builtin provides the shell's built-in commands: cd, pwd, wc,
// history and exit.
//
// The commands operate on a [Session], which holds the working directory
// and the command log. The working directory is kept in the Session only;
// the process working directory is never changed, so it has no effect on
// anything outside the Session.
//
// Files are read through a [lesiw.io/fs.FS]. Use osfs for the local
// filesystem and memfs in tests.
//
//	s := builtin.New(memfs.New(), "/home/gopher", "/home/gopher")
//	out, err := terminal.Read(ctx, s.Shell(), "pwd") // "/home/gopher"
package builtin

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"lesiw.io/fs"
	"lesiw.io/fs/path"
	"lesiw.io/terminal"
	"lesiw.io/terminal/internal/sh"
)

// Entry is one command in a Session's log.
type Entry struct {
	Index int    // 1-based position in the log.
	Name  string // Command name as typed.
}

// Session is the state shared by the built-in commands.
// A Session is not safe for concurrent use.
type Session struct {
	fsys fs.FS
	home string
	dir  string
	log  []Entry
}

// New returns a Session reading files from fsys, with home as the home
// directory and dir as the initial working directory.
func New(fsys fs.FS, home, dir string) *Session {
	return &Session{fsys: fsys, home: home, dir: dir}
}

// Dir returns the working directory.
func (s *Session) Dir() string { return s.dir }

// Home returns the home directory.
func (s *Session) Home() string { return s.home }

// History returns a copy of the command log, oldest first.
func (s *Session) History() []Entry { return slices.Clone(s.log) }

// Shell returns a [terminal.Sh] with the built-in commands registered.
//
// cd, pwd, wc and history are appended to the log after they run,
// whether or not they fail. exit is not logged.
func (s *Session) Shell() *terminal.Sh {
	return terminal.Shell().
		HandleFunc("cd", s.logged(s.cd)).
		HandleFunc("pwd", s.logged(s.pwd)).
		HandleFunc("wc", s.logged(s.wc)).
		HandleFunc("history", s.logged(s.history)).
		HandleFunc("exit", exit)
}

type handler = func(context.Context, ...string) terminal.Buffer

func (s *Session) logged(fn handler) handler {
	return func(ctx context.Context, args ...string) terminal.Buffer {
		buf := fn(ctx, args...)
		s.log = append(s.log, Entry{Index: len(s.log) + 1, Name: args[0]})
		return buf
	}
}

// resolve returns name joined onto the working directory, unless name is
// already absolute.
func (s *Session) resolve(name string) string {
	if path.IsAbs(name) {
		return name
	}
	return path.Join(s.dir, name)
}

// output returns a Buffer that reads lines, each terminated by a newline.
// cmd is the command line reported when the Buffer is traced.
func output(cmd sh.Stringer, lines ...string) terminal.Buffer {
	var text string
	if len(lines) > 0 {
		text = strings.Join(lines, "\n") + "\n"
	}
	return struct {
		*strings.Reader
		sh.Stringer
	}{
		strings.NewReader(text),
		cmd,
	}
}

// fail returns a Buffer that fails with a formatted command error.
func fail(args []string, format string, a ...any) terminal.Buffer {
	return struct {
		terminal.Buffer
		sh.Stringer
	}{
		terminal.Fail(&terminal.Error{Code: 1, Err: fmt.Errorf(format, a...)}),
		sh.String(args...),
	}
}
