// Package sh renders argument vectors the way a POSIX shell would read
// them back, for use in traces.
package sh

import (
	"fmt"
	"regexp"
	"strings"
)

var unsafe = regexp.MustCompile(`[^\w@%+=:,./-]`)

type Stringer string

func (s Stringer) String() string {
	return string(s)
}

var _ fmt.Stringer = Stringer("")

// Quote quotes a string for safe use in shell commands.
func Quote(s string) string {
	if s == "" {
		return `''`
	}
	if !unsafe.MatchString(s) {
		return s
	}
	return `'` + strings.ReplaceAll(s, `'`, `'\''`) + `'`
}

// Join joins command arguments with proper shell quoting.
func Join(parts []string) string {
	quoted := make([]string, len(parts))
	for i, part := range parts {
		quoted[i] = Quote(part)
	}
	return strings.Join(quoted, " ")
}

// String returns the command line for arg as a [Stringer].
func String(arg ...string) Stringer {
	return Stringer(Join(arg))
}
