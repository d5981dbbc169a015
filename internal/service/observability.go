package service

import (
	"context"
	"log/slog"
	"time"
)

// ReportEvent captures lightweight telemetry for one report run.
type ReportEvent struct {
	RunID         string
	Month         time.Time
	FilesScanned  int
	Captures      int
	ParseFailures int
	Duration      time.Duration
	Err           error
}

// ReportObserver receives report run events.
type ReportObserver interface {
	ObserveReport(ctx context.Context, event ReportEvent)
}

// NoopReportObserver ignores all events.
type NoopReportObserver struct{}

func (NoopReportObserver) ObserveReport(context.Context, ReportEvent) {}

type logReportObserver struct {
	logger *slog.Logger
}

// NewLogReportObserver writes report events to logger at debug level, or at
// error level when the run failed.
func NewLogReportObserver(logger *slog.Logger) ReportObserver {
	if logger == nil {
		return NoopReportObserver{}
	}
	return &logReportObserver{logger: logger}
}

func (o *logReportObserver) ObserveReport(ctx context.Context, event ReportEvent) {
	attrs := []any{
		"run_id", event.RunID,
		"month", event.Month.Format("2006-01"),
		"files", event.FilesScanned,
		"captures", event.Captures,
		"parse_failures", event.ParseFailures,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "report_run", attrs...)
		return
	}
	o.logger.DebugContext(ctx, "report_run", attrs...)
}

func reportObserverOrNoop(observers []ReportObserver) ReportObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopReportObserver{}
}
