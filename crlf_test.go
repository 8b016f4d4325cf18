package terminal

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestCRLFReader(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "line1\r\nline2\r\n", "line1\nline2\n"},
		{"cr", "line1\rline2\r", "line1\nline2\n"},
		{"lf", "line1\nline2\n", "line1\nline2\n"},
		{"mixed", "unix\nwin\r\nmac\rend", "unix\nwin\nmac\nend"},
		{"blank lines", "\r\n\r\n\n", "\n\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := crlfReader(strings.NewReader(tt.in))
			if got, err := io.ReadAll(r); err != nil {
				t.Errorf("ReadAll() error = %v", err)
			} else if string(got) != tt.want {
				t.Errorf("ReadAll() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCRLFReaderWithSplitCRLF(t *testing.T) {
	r := iotest.OneByteReader(strings.NewReader("test\r\ndata"))
	if got, err := io.ReadAll(crlfReader(r)); err != nil {
		t.Errorf("ReadAll() error = %v", err)
	} else if want := "test\ndata"; string(got) != want {
		t.Errorf("ReadAll() = %q, want %q", got, want)
	}
}

func TestCRLFReaderDoesNotWaitForFullBuffer(t *testing.T) {
	pr, pw := io.Pipe()
	go func() {
		_, _ = io.WriteString(pw, "pwd\r\n")
	}()
	t.Cleanup(func() { _ = pw.Close() })

	buf := make([]byte, 4096)
	n, err := crlfReader(pr).Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got, want := string(buf[:n]), "pwd\n"; got != want {
		t.Errorf("Read() = %q, want %q", got, want)
	}
}
