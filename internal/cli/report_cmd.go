package cli

import (
	"fmt"
	"log/slog"

	"github.com/alexanderramin/clocktally/internal/cli/formatter"
	"github.com/alexanderramin/clocktally/internal/config"
	"github.com/alexanderramin/clocktally/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func runReport(cmd *cobra.Command, app *App, cfg config.Config) error {
	if app.Reports == nil {
		return fmt.Errorf("report service is not configured")
	}
	if cfg.Verbose && app.LogLevel != nil {
		app.LogLevel.Set(slog.LevelDebug)
	}
	if app.Logger != nil {
		app.Logger.DebugContext(cmd.Context(), "options",
			"date", cfg.Date.Format(config.DateLayout),
			"worklog_dir", cfg.WorklogDir,
			"directory_pattern", cfg.DirectoryPattern,
			"ext", cfg.Extension,
		)
	}

	report, err := app.Reports.Generate(cmd.Context(), service.ReportRequest{
		Date:             cfg.Date,
		WorklogDir:       cfg.WorklogDir,
		DirectoryPattern: cfg.DirectoryPattern,
		Extension:        cfg.Extension,
	})
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	var st *formatter.Styles
	if app.IsTerminal != nil && app.IsTerminal(stderr) {
		st = formatter.NewStyles(lipgloss.NewRenderer(stderr))
	}

	cells := report.Cells()
	fmt.Fprint(stderr, formatter.FormatDayListing(cells[:], st))
	fmt.Fprint(stderr, formatter.FormatTotal(report.TotalHours(), st))
	fmt.Fprint(stderr, formatter.FormatSeparator(st))

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRow(cells[:]))
	return nil
}
