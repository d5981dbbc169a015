package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DateLayout is the accepted format of the --date override.
const DateLayout = "2006-01-02"

// ErrBadDate indicates a date override that is not a valid YYYY-MM-DD date.
var ErrBadDate = errors.New("invalid report date")

// Config holds the settings for one report run.
type Config struct {
	Date             time.Time
	WorklogDir       string
	DirectoryPattern string
	Extension        string
	Verbose          bool
}

// DefaultConfig returns a Config for the current month rooted at ~/Worklog.
func DefaultConfig() Config {
	return Config{
		Date:             Today(),
		WorklogDir:       defaultWorklogDir(),
		DirectoryPattern: "%Y/%m %B",
		Extension:        ".org",
	}
}

// LoadConfig reads CLOCKTALLY_* environment variables over the defaults.
// Command-line flags take precedence over both.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CLOCKTALLY_WORKLOG_DIR"); v != "" {
		cfg.WorklogDir = v
	}
	if v := os.Getenv("CLOCKTALLY_DIRECTORY_PATTERN"); v != "" {
		cfg.DirectoryPattern = v
	}
	if v := os.Getenv("CLOCKTALLY_EXT"); v != "" {
		cfg.Extension = v
	}
	if v := os.Getenv("CLOCKTALLY_VERBOSE"); v != "" {
		cfg.Verbose, _ = strconv.ParseBool(v)
	}

	return cfg
}

// ParseDate parses a YYYY-MM-DD override as a local calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrBadDate, s, err)
	}
	return t, nil
}

// Today returns midnight of the current local date.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func defaultWorklogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Worklog"
	}
	return filepath.Join(home, "Worklog")
}
