package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reugn/go-cronmatch/cmd/commands"
	"github.com/reugn/go-cronmatch/cronmatch"
	"github.com/reugn/go-cronmatch/timeparse"
)

// friday is 2024-04-05 03:15:00 UTC.
const friday = "@1712286900"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.Writer = &out
	cmd.ErrWriter = &errOut
	err := cmd.Run(context.Background(), append([]string{"cronmatch"}, args...))
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cronmatch.yaml")
	content := `
location: UTC
log_level: off
schedules:
  - name: backup_nightly
    expression: "0 2 * * *"
  - name: report_workdays
    expression: "*/15 * * * mon-fri"
  - name: report_weekend
    expression: "*/15 * * * sat,sun"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMatchCommand(t *testing.T) {
	out, err := run(t, "--location", "UTC", "match", friday, "0-5,10-59/5 * 2-10,15-25 jan-jun/2 mon-fri")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "--location", "UTC", "match", friday, "12", "*", "*", "*", "*")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = run(t, "match", "now", "* * * * *")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestMatchCommandErrors(t *testing.T) {
	_, err := run(t, "match", "now", "* * * *")
	assert.ErrorIs(t, err, cronmatch.ErrInvalidExpression)

	_, err = run(t, "match", "someday", "* * * * *")
	assert.ErrorIs(t, err, timeparse.ErrUnresolvableTime)

	_, err = run(t, "match", "now")
	assert.Error(t, err)

	_, err = run(t, "--location", "Nowhere/Special", "match", "now", "* * * * *")
	assert.Error(t, err)
}

func TestComponentCommand(t *testing.T) {
	out, err := run(t, "component", "0-thu/2", "4")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "component", "0-thu/2", "3")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	_, err = run(t, "component", "2/3/4", "2")
	assert.ErrorIs(t, err, cronmatch.ErrInvalidExpression)

	_, err = run(t, "component", "*", "many")
	assert.Error(t, err)
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "resolve", "January")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = run(t, "resolve", "sun")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, err = run(t, "resolve", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "1.5\n", out)

	out, err = run(t, "resolve", "rubbish")
	require.NoError(t, err)
	assert.Equal(t, "unresolved\n", out)
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "*/15 9-17 * * mon-fri")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	_, err = run(t, "validate", "1 * * * foo")
	assert.ErrorIs(t, err, cronmatch.ErrInvalidExpression)
	assert.Contains(t, err.Error(), "day-of-week")
}

func TestCheckCommand(t *testing.T) {
	path := writeConfig(t)

	out, err := run(t, "--config", path, "check", "--at", friday)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "backup_nightly")
	assert.True(t, strings.HasSuffix(lines[1], "false"))
	assert.True(t, strings.HasSuffix(lines[2], "true"))
	assert.True(t, strings.HasSuffix(lines[3], "false"))

	out, err = run(t, "--config", path, "check", "--at", friday, "--active")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "report_workdays")

	out, err = run(t, "--config", path, "check", "--at", friday, "--name", "backup")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "backup_nightly")

	out, err = run(t, "--config", path, "check", "--name", "missing")
	require.NoError(t, err)
	assert.Equal(t, "No schedules found.\n", out)
}

func TestCheckCommandWithoutConfig(t *testing.T) {
	t.Setenv("CRONMATCH_CONFIG", "")
	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "No schedules found.\n", out)
}

func TestCheckCommandConfigFromEnv(t *testing.T) {
	t.Setenv("CRONMATCH_CONFIG", writeConfig(t))
	out, err := run(t, "check", "--at", friday, "--active")
	require.NoError(t, err)
	assert.Contains(t, out, "report_workdays")
}
