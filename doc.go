// Package terminal provides a minimal interactive shell.
//
// A [Buffer] represents a command's execution and its output.
// Reading a Buffer to [io.EOF] completes the command.
// A failing command's Buffer returns the failure from Read.
//
// Buffers are created by a [Machine].
// [Sh] is a [Machine] that routes each command by its name
// to a registered handler, much like an [net/http.ServeMux].
//
//	sh := terminal.Shell()
//	sh.HandleFunc("hello", func(
//	    ctx context.Context, args ...string,
//	) terminal.Buffer {
//	    return strings.NewReader("Hello world!\n")
//	})
//
// Commands that are not registered fail with an [*Error]
// for which [NotFound] reports true.
//
// Other packages provided by this module:
//   - [lesiw.io/terminal/builtin] - cd, pwd, wc, history and exit
//   - [lesiw.io/terminal/mock] - mock Machine for testing
//
// Helpers are available for common buffer operations.
// [Read] creates and executes a [Buffer], then returns its output as a string.
// Trailing whitespace is removed, like command substitution in a shell.
// [Exec] creates and executes a [Buffer], streaming its output to a writer.
//
// # Sessions
//
// A [REPL] prompts, reads one line at a time, splits the line with [Parse],
// and runs the result on its Machine.
// Lines come from an iterator:
// [Lines] reads them from any [io.Reader],
// and [ReadLines] adapts a line editor such as golang.org/x/term.
//
//	s := builtin.New(osfs.New(), home, dir)
//	repl := &terminal.REPL{Machine: s.Shell(), Out: os.Stdout}
//	err := repl.Run(ctx, terminal.Lines(os.Stdin))
//
// Blank lines re-prompt without running anything.
// Failures are printed and the loop continues.
// The loop stops at the exit command or at the end of input.
//
// # Tracing
//
// [Trace] logs every command the REPL runs.
// It defaults to [io.Discard].
// [ShTrace] writes commands to stderr prefixed with "+ ",
// in the style of set -x.
//
//	terminal.Trace = terminal.ShTrace
//
// # Testing
//
// The builtins accept any [lesiw.io/fs.FS],
// so tests may run them against lesiw.io/fs/memfs
// without touching the host filesystem.
// [lesiw.io/terminal/mock] records the commands a REPL dispatches.
package terminal
