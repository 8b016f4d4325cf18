//go:build !remote

package mock_test

import (
	"testing"

	"lesiw.io/terminal/internal/testcheck"
)

func TestCheck(t *testing.T) { testcheck.Run(t) }
