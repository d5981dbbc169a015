package worklog

import (
	"bufio"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/alexanderramin/clocktally/internal/domain"
)

// maxLineBytes bounds a single log line. Longer lines are skipped whole.
const maxLineBytes = 1024 * 1024

// Matcher extracts a capture from a single line.
type Matcher interface {
	Match(line string) (domain.Capture, bool)
}

// Scanner reads log files one at a time and yields matching CLOCK captures.
type Scanner struct {
	matcher Matcher
	logger  *slog.Logger

	files int
}

// NewScanner creates a Scanner. A nil logger discards skip notices.
func NewScanner(m Matcher, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{matcher: m, logger: logger}
}

// Scan yields the captures of every file in paths, in order. Each file is
// closed before the next one is opened. Files that cannot be opened and read
// errors are skipped.
func (s *Scanner) Scan(paths iter.Seq[string]) iter.Seq[domain.Capture] {
	return func(yield func(domain.Capture) bool) {
		for path := range paths {
			if !s.scanFile(path, yield) {
				return
			}
		}
	}
}

// FilesScanned returns how many files were opened successfully so far.
func (s *Scanner) FilesScanned() int {
	return s.files
}

// scanFile returns false when the consumer stopped the iteration.
func (s *Scanner) scanFile(path string, yield func(domain.Capture) bool) bool {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Debug("skipping unreadable file", "path", path, "error", err)
		return true
	}
	defer f.Close()
	s.files++

	r := bufio.NewReaderSize(f, 64*1024)
	for line := 1; ; line++ {
		text, tooLong, err := readLine(r)
		if err == io.EOF {
			return true
		}
		if err != nil {
			s.logger.Debug("stopped reading file", "path", path, "line", line, "error", err)
			return true
		}
		if tooLong {
			s.logger.Debug("skipping over-long line", "path", path, "line", line)
			continue
		}
		c, ok := s.matcher.Match(text)
		if !ok {
			continue
		}
		c.Path = path
		c.Line = line
		if !yield(c) {
			return false
		}
	}
}

// readLine returns the next line without its "\n" or "\r\n" terminator. A
// line longer than maxLineBytes is read to its end and dropped, with tooLong
// set, so the following line starts cleanly. io.EOF is returned only once no
// bytes remain.
func readLine(r *bufio.Reader) (text string, tooLong bool, err error) {
	var buf []byte
	read := 0
	for {
		chunk, rerr := r.ReadSlice('\n')
		read += len(chunk)
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > maxLineBytes {
				tooLong, buf = true, nil
			}
		}
		if rerr == bufio.ErrBufferFull {
			continue
		}
		if rerr != nil && (rerr != io.EOF || read == 0) {
			return "", false, rerr
		}
		break
	}
	if tooLong {
		return "", true, nil
	}
	text = strings.TrimSuffix(string(buf), "\n")
	return strings.TrimSuffix(text, "\r"), false, nil
}
