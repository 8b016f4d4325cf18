package terminal

import (
	"context"
	"fmt"

	"lesiw.io/terminal/internal/sh"
	"lesiw.io/zeros"
)

// Sh is a Machine that routes commands to registered machines by command
// name.
//
// A Sh requires explicit registration of all commands. Unregistered
// commands, and empty command lines, fail with an [*Error] for which
// [NotFound] reports true.
//
//	sh := terminal.Shell().
//		HandleFunc("pwd", pwd).
//		HandleFunc("exit", exit)
//
//	out, err := terminal.Read(ctx, sh, "pwd") // ✓
//	_, err = terminal.Read(ctx, sh, "ls")     // ✗ command not found
type Sh struct {
	routes zeros.Map[string, Machine]
}

// Shell returns an empty Sh.
func Shell() *Sh { return new(Sh) }

// Handle registers a machine to handle the specified command.
// A later registration for the same name replaces the earlier one.
// Returns the shell for method chaining.
func (sh *Sh) Handle(command string, machine Machine) *Sh {
	sh.routes.Set(command, machine)
	return sh
}

// HandleFunc registers a function to handle the specified command.
// This is a convenience wrapper around Handle for function handlers.
// Returns the shell for method chaining.
func (sh *Sh) HandleFunc(
	command string,
	fn func(context.Context, ...string) Buffer,
) *Sh {
	return sh.Handle(command, MachineFunc(fn))
}

// Command implements the Machine interface. It routes the command to the
// registered machine based on the command name (args[0]).
func (sh *Sh) Command(ctx context.Context, args ...string) Buffer {
	if len(args) == 0 {
		return Fail(&Error{Err: fmt.Errorf("no command specified")})
	}
	if machine, ok := sh.routes.CheckGet(args[0]); ok {
		return machine.Command(ctx, args...)
	}
	return notFound(args)
}

func notFound(args []string) Buffer {
	return struct {
		Buffer
		sh.Stringer
	}{
		Fail(&Error{Err: fmt.Errorf("command not found: %s", args[0])}),
		sh.String(args...),
	}
}
