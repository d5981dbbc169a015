package cli

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/clocktally/internal/config"
	"github.com/alexanderramin/clocktally/internal/service"
	"github.com/alexanderramin/clocktally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var march2024 = time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)

// testApp wires an App whose defaults point at root.
func testApp(t *testing.T, root string) (*App, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: level}))

	cfg := config.DefaultConfig()
	cfg.WorklogDir = root

	return &App{
		Reports:  service.NewReportService(logger, service.NewLogReportObserver(logger)),
		Config:   cfg,
		Logger:   logger,
		LogLevel: level,
	}, &logs
}

// executeCmd runs the root command and captures stdout and stderr separately.
func executeCmd(t *testing.T, app *App, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := NewRootCmd(app)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_ReportsMonth(t *testing.T) {
	root, monthDir := testutil.NewWorklog(t, march2024)
	testutil.WriteLog(t, monthDir, "work.org",
		"CLOCK: [2024-03-05 Tue 09:00]--[2024-03-05 Tue 17:00] =>  8:00")
	app, _ := testApp(t, root)

	stdout, stderr, err := executeCmd(t, app, "--date", "2024-03-20")
	require.NoError(t, err)

	fields := strings.Split(strings.TrimSuffix(stdout, "\n"), "\t")
	require.Len(t, fields, 31)
	assert.Equal(t, "8.00", fields[4])
	assert.Equal(t, 1, strings.Count(stdout, "\n"))

	assert.Contains(t, stderr, " 5:  8.00\n")
	assert.Contains(t, stderr, "T:   8.00\n")
	assert.Contains(t, stderr, strings.Repeat("-", 80))
	assert.NotContains(t, stderr, "\x1b[")
}

func TestRootCmd_ShortFlags(t *testing.T) {
	root, monthDir := testutil.NewWorklog(t, march2024)
	testutil.WriteLog(t, monthDir, "work.org",
		"CLOCK: [2024-03-01 Fri 09:00]--[2024-03-01 Fri 09:15]")
	app, _ := testApp(t, t.TempDir())

	stdout, _, err := executeCmd(t, app, "-d", "2024-03-01", "-w", root)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "0.25\t"))
}

func TestRootCmd_DirectoryPatternAndExt(t *testing.T) {
	root := t.TempDir()
	testutil.WriteLog(t, root, "2024-03/log.txt",
		"CLOCK: [2024-03-02 Sat 10:00]--[2024-03-02 Sat 12:30]")
	app, _ := testApp(t, root)

	stdout, _, err := executeCmd(t, app,
		"--date", "2024-03-02", "--directory-pattern", "%Y-%m", "--ext", ".txt")
	require.NoError(t, err)

	fields := strings.Split(strings.TrimSuffix(stdout, "\n"), "\t")
	assert.Equal(t, "2.50", fields[1])
}

func TestRootCmd_InvalidDate(t *testing.T) {
	app, _ := testApp(t, t.TempDir())

	stdout, _, err := executeCmd(t, app, "--date", "2024-13-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report date")
	assert.Empty(t, stdout)
}

func TestRootCmd_MissingMonthDir(t *testing.T) {
	app, _ := testApp(t, t.TempDir())

	stdout, stderr, err := executeCmd(t, app, "--date", "2024-03-05")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "03 March")
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	app, _ := testApp(t, t.TempDir())

	_, _, err := executeCmd(t, app, "extra")
	require.Error(t, err)
}

func TestRootCmd_VerboseLogsOptions(t *testing.T) {
	root, _ := testutil.NewWorklog(t, march2024)
	app, logs := testApp(t, root)

	_, _, err := executeCmd(t, app, "--date", "2024-03-05", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "msg=options")
	assert.Contains(t, logs.String(), "date=2024-03-05")
	assert.Contains(t, logs.String(), "msg=report_run")
}

func TestRootCmd_QuietByDefault(t *testing.T) {
	root, _ := testutil.NewWorklog(t, march2024)
	app, logs := testApp(t, root)

	_, _, err := executeCmd(t, app, "--date", "2024-03-05")
	require.NoError(t, err)
	assert.Empty(t, logs.String())
}

func TestRootCmd_StyledOnTerminal(t *testing.T) {
	root, monthDir := testutil.NewWorklog(t, march2024)
	testutil.WriteLog(t, monthDir, "work.org",
		"CLOCK: [2024-03-05 Tue 09:00]--[2024-03-05 Tue 10:00]")
	app, _ := testApp(t, root)
	app.IsTerminal = func(io.Writer) bool { return true }

	stdout, stderr, err := executeCmd(t, app, "--date", "2024-03-05")
	require.NoError(t, err)
	// A bytes.Buffer has no color profile, so styling degrades to plain text,
	// but the row on stdout is never styled either way.
	assert.Contains(t, stderr, "1.00")
	assert.NotContains(t, stdout, "\x1b[")
}
