package terminal

import "strings"

// Parse splits line into whitespace-separated tokens.
// The first token is the command name and the rest are its arguments.
// No quoting or escaping is recognized.
//
// Parse reports false if line holds no tokens, in which case there is
// nothing to run.
func Parse(line string) ([]string, bool) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil, false
	}
	return args, true
}
