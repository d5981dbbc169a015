package cli

import (
	"io"
	"log/slog"

	"github.com/alexanderramin/clocktally/internal/config"
	"github.com/alexanderramin/clocktally/internal/service"
	"github.com/spf13/cobra"
)

// App holds what the report command needs at run time.
type App struct {
	Reports service.ReportService
	Config  config.Config

	// Logger and LogLevel are optional; LogLevel is raised to debug by --verbose.
	Logger   *slog.Logger
	LogLevel *slog.LevelVar

	// IsTerminal reports whether w is an interactive terminal. Nil means never.
	IsTerminal func(w io.Writer) bool
}

// NewRootCmd creates the "clocktally" command. Flag defaults come from
// app.Config, which already reflects the environment.
func NewRootCmd(app *App) *cobra.Command {
	cfg := app.Config

	root := &cobra.Command{
		Use:   "clocktally",
		Short: "Sum org-mode CLOCK entries per day for one month",
		Long: `clocktally scans a worklog directory and its month subdirectory for
org files, sums CLOCK intervals that start in the target month per day, and
prints a day listing on stderr and one tab-separated row of 31 daily hour
totals on stdout.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, app, cfg)
		},
	}

	flags := root.Flags()
	flags.VarP(newDateValue(&cfg.Date), "date", "d", "Any day of the month to report on (YYYY-MM-DD, default today)")
	flags.StringVarP(&cfg.WorklogDir, "worklog-dir", "w", cfg.WorklogDir, "Directory containing the worklog files")
	flags.StringVar(&cfg.DirectoryPattern, "directory-pattern", cfg.DirectoryPattern, "strftime pattern of the month subdirectory")
	flags.StringVar(&cfg.Extension, "ext", cfg.Extension, "Extension of worklog files")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log debug details to stderr")

	return root
}
