package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Lines splits command output into lines, dropping the trailing newline.
func Lines(output string) []string {
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return nil
	}
	return strings.Split(output, "\n")
}

// RequireRows asserts that output consists of the given tab separated rows.
func RequireRows(t *testing.T, output string, rows ...[]string) {
	t.Helper()

	lines := Lines(output)
	require.Len(t, lines, len(rows), "unexpected output:\n%s", output)
	for i, row := range rows {
		require.Equal(t, row, strings.Split(lines[i], "\t"), "row %d", i)
	}
}

// RequireError asserts that err is not nil and mentions every msgContains.
func RequireError(t *testing.T, err error, msgContains ...string) {
	t.Helper()

	require.Error(t, err)
	for _, msg := range msgContains {
		require.Contains(t, err.Error(), msg)
	}
}
