package terminal

import (
	"bufio"
	"io"
)

// crlfReader wraps a Reader to normalize line endings on read.
//
// Reads convert line endings to LF (\n):
//   - CRLF (\r\n) → LF (\n)  // Windows
//   - CR (\r) → LF (\n)      // Classic Mac OS
//
// A read returns as soon as the buffered input is drained, so a line typed
// at a terminal is delivered without waiting for more input.
func crlfReader(r io.Reader) io.Reader {
	return &crlf{br: bufio.NewReader(r)}
}

type crlf struct {
	br *bufio.Reader
	cr bool // Last byte was \r; drop a following \n.
}

func (c *crlf) Read(p []byte) (n int, err error) {
	var ch byte
	for n < len(p) {
		if n > 0 && c.br.Buffered() == 0 {
			break
		}
		ch, err = c.br.ReadByte()
		if err != nil {
			break
		}
		if c.cr && ch == '\n' {
			c.cr = false
			continue
		}
		c.cr = ch == '\r'
		if c.cr {
			ch = '\n'
		}
		p[n] = ch
		n++
	}
	return
}
