package worklog

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// ErrListDir indicates a worklog directory could not be listed.
var ErrListDir = errors.New("listing worklog directory")

// MonthDir returns the month subdirectory of root for date, rendering
// pattern with strftime directives (e.g. "%Y/%m %B" -> "2024/03 March").
func MonthDir(root, pattern string, date time.Time) string {
	return filepath.Join(root, strftime.Format(pattern, date))
}

// Locate lists root and monthDir and returns the log files found in both,
// root first. Both listings happen before the sequence is returned, so a
// missing directory fails here and not halfway through a report.
//
// Files present in both listings are yielded twice.
func Locate(root, monthDir, ext string) (iter.Seq[string], error) {
	var listings [][]os.DirEntry
	dirs := []string{root, monthDir}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrListDir, dir, err)
		}
		listings = append(listings, entries)
	}

	return func(yield func(string) bool) {
		for i, entries := range listings {
			for _, entry := range entries {
				if !isLogFile(entry, ext) {
					continue
				}
				if !yield(filepath.Join(dirs[i], entry.Name())) {
					return
				}
			}
		}
	}, nil
}

// isLogFile reports whether entry is a visible regular file ending in ext.
// Entries whose metadata cannot be read are excluded.
func isLogFile(entry os.DirEntry, ext string) bool {
	info, err := entry.Info()
	if err != nil {
		return false
	}
	name := entry.Name()
	return info.Mode().IsRegular() &&
		!strings.HasPrefix(name, ".") &&
		strings.HasSuffix(name, ext)
}
