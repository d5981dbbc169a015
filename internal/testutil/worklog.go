package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// NewWorklog creates an empty worklog root in a temp dir along with the
// "%Y/%m %B" month subdirectory for month. It returns both paths.
func NewWorklog(t *testing.T, month time.Time) (root, monthDir string) {
	t.Helper()
	root = t.TempDir()
	monthDir = filepath.Join(root, month.Format("2006/01 January"))
	if err := os.MkdirAll(monthDir, 0o755); err != nil {
		t.Fatalf("creating month dir: %v", err)
	}
	return root, monthDir
}

// WriteLog writes lines to dir/name and returns the full path.
func WriteLog(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating log dir: %v", err)
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing log %s: %v", path, err)
	}
	return path
}

// ClockLine renders an org-mode CLOCK line for the given wall-clock range.
func ClockLine(start, end time.Time) string {
	const layout = "2006-01-02 Mon 15:04"
	d := end.Sub(start)
	return fmt.Sprintf("    CLOCK: [%s]--[%s] => %2d:%02d",
		start.Format(layout), end.Format(layout), int(d.Hours()), int(d.Minutes())%60)
}
