package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// swap swaps a variable's value and restores it via t.Cleanup.
func swap[T any](t *testing.T, ptr *T, val T) {
	t.Helper()
	old := *ptr
	*ptr = val
	t.Cleanup(func() { *ptr = old })
}

func pipe(t *testing.T, input string) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = r.Close() })
	go func() {
		_, _ = io.WriteString(w, input)
		_ = w.Close()
	}()
	return r
}

func TestRun(t *testing.T) {
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	swap(t, &stdin, pipe(t, "pwd\ncd ..\npwd\nexit\n"))
	swap[io.Writer](t, &stdout, &out)

	if err := run(t.Context()); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	want := "^_^$ " + dir + "\n" +
		"^_^$ " +
		"^_^$ " + filepath.Dir(dir) + "\n" +
		"^_^$ "
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if got, err := os.Getwd(); err != nil || got != dir {
		t.Errorf("os.Getwd() = %q, %v, want %q", got, err, dir)
	}
}

func TestRunEndOfInput(t *testing.T) {
	var out bytes.Buffer
	swap(t, &stdin, pipe(t, "history\n"))
	swap[io.Writer](t, &stdout, &out)

	if err := run(t.Context()); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if got, want := out.String(), "^_^$ ^_^$ "; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
