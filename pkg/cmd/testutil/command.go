package testutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes command as a subcommand of a throwaway application and
// returns everything it wrote.
func RunCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()
	return RunCommandWithInput(context.Background(), t, command, "", args...)
}

// RunCommandWithInput is RunCommand with stdin set to input and a custom
// context.
func RunCommandWithInput(ctx context.Context, t *testing.T, command *cli.Command, input string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:     "test",
		Commands: []*cli.Command{command},
		Reader:   strings.NewReader(input),
		Writer:   &buf,
	}

	// Prepend command name to args
	fullArgs := append([]string{"test", command.Name}, args...)

	err := app.Run(ctx, fullArgs)
	return buf.String(), err
}
