// Package mock provides a Machine implementation for testing that records
// invocations and returns queued responses.
//
//	m := new(mock.Machine)
//	m.Return(strings.NewReader("/home/gopher\n"), "pwd")
//	m.Return(terminal.Fail(terminal.ErrExit), "exit")
//
//	repl := &terminal.REPL{Machine: m, Out: &out}
//	err := repl.Run(ctx, terminal.Lines(strings.NewReader("pwd\nexit\n")))
//
//	want := []mock.Call{{Args: []string{"pwd"}}, {Args: []string{"exit"}}}
//	if got := m.Calls(); !cmp.Equal(want, got) {
//		t.Errorf("calls mismatch (-want +got):\n%s", cmp.Diff(want, got))
//	}
//
// Responses are matched on the command name. Each call consumes the next
// queued response for its name; once the queue is empty, the command
// produces no output.
package mock

import (
	"bytes"
	"context"
	"io"
	"slices"
	"sync"

	"lesiw.io/terminal"
)

// Call represents a single command invocation captured by the mock Machine.
type Call struct {
	Args []string
}

// Machine is a mock implementation of terminal.Machine.
// The zero value is ready to use.
type Machine struct {
	mu        sync.Mutex
	calls     []Call
	responses map[string][]io.Reader
}

// Return queues r as the output of the next call to the named command.
func (m *Machine) Return(r io.Reader, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.responses == nil {
		m.responses = make(map[string][]io.Reader)
	}
	m.responses[name] = append(m.responses[name], r)
}

// Command implements the terminal.Machine interface.
func (m *Machine) Command(_ context.Context, args ...string) terminal.Buffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Args: slices.Clone(args)})
	if len(args) == 0 {
		return bytes.NewReader(nil)
	}
	queue := m.responses[args[0]]
	if len(queue) == 0 {
		return bytes.NewReader(nil)
	}
	m.responses[args[0]] = queue[1:]
	return queue[0]
}

// Calls returns the invocations recorded so far, oldest first.
// If names are given, only calls to those commands are returned.
func (m *Machine) Calls(names ...string) []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	var calls []Call
	for _, c := range m.calls {
		if len(names) == 0 ||
			len(c.Args) > 0 && slices.Contains(names, c.Args[0]) {
			calls = append(calls, c)
		}
	}
	return calls
}
