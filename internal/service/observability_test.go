package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogReportObserver_Success(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewLogReportObserver(logger).ObserveReport(context.Background(), ReportEvent{
		RunID:        "run-1",
		Month:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		FilesScanned: 4,
		Captures:     12,
	})

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "run_id=run-1")
	assert.Contains(t, out, "month=2024-03")
	assert.Contains(t, out, "files=4")
	assert.Contains(t, out, "captures=12")
}

func TestLogReportObserver_Failure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	NewLogReportObserver(logger).ObserveReport(context.Background(), ReportEvent{
		Err: errors.New("boom"),
	})

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogReportObserver_NilLoggerIsNoop(t *testing.T) {
	obs := NewLogReportObserver(nil)
	assert.IsType(t, NoopReportObserver{}, obs)
}
