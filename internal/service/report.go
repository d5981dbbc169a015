package service

import (
	"context"
	"time"

	"github.com/alexanderramin/clocktally/internal/tally"
)

// ReportRequest selects the month and the worklog tree to report on.
type ReportRequest struct {
	Date             time.Time
	WorklogDir       string
	DirectoryPattern string
	Extension        string
}

// Report is the result of one run over the worklog.
type Report struct {
	RunID    string
	Month    time.Time
	MonthDir string
	Buckets  tally.Buckets

	FilesScanned  int
	Captures      int
	ParseFailures int
}

// Hours returns the per-day values rounded to quarter hours.
func (r *Report) Hours() [tally.DaysInReport]float64 {
	return r.Buckets.Hours()
}

// Cells returns the per-day display strings.
func (r *Report) Cells() [tally.DaysInReport]string {
	return r.Buckets.Cells()
}

// TotalHours sums the rounded per-day values.
func (r *Report) TotalHours() float64 {
	return tally.SumHours(r.Hours())
}

type ReportService interface {
	Generate(ctx context.Context, req ReportRequest) (*Report, error)
}
