package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/callboard/callboard/internal/auditlog"
	"github.com/callboard/callboard/internal/backend"
	"github.com/callboard/callboard/internal/config"
)

var (
	sevInfo     = color.New(color.FgBlue).SprintFunc()
	sevWarning  = color.New(color.FgYellow).SprintFunc()
	sevError    = color.New(color.FgRed).SprintFunc()
	sevCritical = color.New(color.FgRed, color.Bold).SprintFunc()
)

func newLogsCmd() *cobra.Command {
	var filter backend.AuditFilter
	var exportPath string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Query the backend audit log",
		Example: `  callboard logs
  callboard logs --severity warning --category auth
  callboard logs --start 2026-08-01 --end 2026-08-25
  callboard logs --search campaign
  callboard logs --export audit.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				cfg = config.Defaults()
			}

			api := backend.NewClient(cfg.Backend.BaseURL)

			if exportPath != "" {
				body, err := api.ExportAuditCSV(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if err := os.WriteFile(exportPath, body, 0o644); err != nil {
					return fmt.Errorf("writing export: %w", err)
				}
				fmt.Printf("Exported audit log to %s (suggested name: %s)\n",
					exportPath, auditlog.ExportFilename(time.Now()))
				return nil
			}

			entries, err := api.ListAuditLogs(cmd.Context(), filter)
			if err != nil {
				return err
			}
			entries = auditlog.Narrow(entries, filter.Search)

			if len(entries) == 0 {
				fmt.Println("No audit entries found.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "TIME\tUSER\tACTION\tRESOURCE\tCATEGORY\tSEVERITY\tSTATUS\n") //nolint:errcheck // CLI output
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", //nolint:errcheck // CLI output
					e.Timestamp, e.Actor.Username, e.Action, e.Resource,
					e.Category, colorSeverity(e.Severity), e.Status)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&filter.StartDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.EndDate, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.UserID, "user", "", "filter by user id")
	cmd.Flags().StringVar(&filter.Action, "action", "", "filter by action")
	cmd.Flags().StringVar(&filter.Severity, "severity", "", "filter by severity (info, warning, error, critical)")
	cmd.Flags().StringVar(&filter.Category, "category", "", "filter by category")
	cmd.Flags().StringVar(&filter.Status, "status", "", "filter by outcome (success, failure, pending)")
	cmd.Flags().StringVar(&filter.Search, "search", "", "free-text search over action, resource, and username")
	cmd.Flags().StringVar(&exportPath, "export", "", "write the CSV export to a file instead of printing")
	return cmd
}

func colorSeverity(sev backend.Severity) string {
	switch sev {
	case backend.SeverityInfo:
		return sevInfo(string(sev))
	case backend.SeverityWarning:
		return sevWarning(string(sev))
	case backend.SeverityError:
		return sevError(string(sev))
	case backend.SeverityCritical:
		return sevCritical(string(sev))
	default:
		return string(sev)
	}
}
