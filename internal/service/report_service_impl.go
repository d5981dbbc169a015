package service

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/alexanderramin/clocktally/internal/clock"
	"github.com/alexanderramin/clocktally/internal/domain"
	"github.com/alexanderramin/clocktally/internal/tally"
	"github.com/alexanderramin/clocktally/internal/worklog"
	"github.com/google/uuid"
)

type reportService struct {
	logger   *slog.Logger
	observer ReportObserver
}

// NewReportService creates a ReportService. Parse diagnostics go to logger;
// a nil logger discards them.
func NewReportService(logger *slog.Logger, observers ...ReportObserver) ReportService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &reportService{
		logger:   logger,
		observer: reportObserverOrNoop(observers),
	}
}

func (s *reportService) Generate(ctx context.Context, req ReportRequest) (*Report, error) {
	startedAt := time.Now()
	report := &Report{
		RunID: uuid.New().String(),
		Month: time.Date(req.Date.Year(), req.Date.Month(), 1, 0, 0, 0, 0, req.Date.Location()),
	}

	// Every diagnostic of this run carries its ID, matching the report_run event.
	logger := s.logger.With("run_id", report.RunID)
	err := s.generate(ctx, logger, req, report)
	s.observer.ObserveReport(ctx, ReportEvent{
		RunID:         report.RunID,
		Month:         report.Month,
		FilesScanned:  report.FilesScanned,
		Captures:      report.Captures,
		ParseFailures: report.ParseFailures,
		Duration:      time.Since(startedAt),
		Err:           err,
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) generate(ctx context.Context, logger *slog.Logger, req ReportRequest, report *Report) error {
	pattern, err := clock.NewPattern(req.Date)
	if err != nil {
		return err
	}

	report.MonthDir = worklog.MonthDir(req.WorklogDir, req.DirectoryPattern, req.Date)
	paths, err := worklog.Locate(req.WorklogDir, report.MonthDir, req.Extension)
	if err != nil {
		return fmt.Errorf("locating log files: %w", err)
	}

	scanner := worklog.NewScanner(pattern, logger)
	report.Buckets = tally.Fold(intervals(ctx, logger, report, scanner.Scan(paths)))
	report.FilesScanned = scanner.FilesScanned()
	return nil
}

// intervals parses each capture, logging and dropping the ones that fail.
func intervals(ctx context.Context, logger *slog.Logger, report *Report, captures iter.Seq[domain.Capture]) iter.Seq[domain.Interval] {
	return func(yield func(domain.Interval) bool) {
		for c := range captures {
			report.Captures++
			iv, err := clock.ParseInterval(c)
			if err != nil {
				report.ParseFailures++
				logger.WarnContext(ctx, "skipping clock line",
					"path", c.Path, "line", c.Line, "error", err)
				continue
			}
			if !yield(iv) {
				return
			}
		}
	}
}
