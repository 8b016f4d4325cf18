package terminal

import "io"

// Buffer represents a command's execution.
// Buffers provide read access to command output.
// Reading drives execution and returns output until the command completes.
//
// A command that fails returns its error from Read. The error is
// usually an [*Error], or [ErrExit] for a command that ends the session.
type Buffer interface {
	// Read reads output from the command.
	// Implementations must return EOF when the command terminates.
	io.Reader
}
