package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/callboard/callboard/internal/backend"
	"github.com/callboard/callboard/internal/config"
)

var (
	statusAvailable = color.New(color.FgGreen).SprintFunc()
	statusBusy      = color.New(color.FgYellow).SprintFunc()
	statusOffline   = color.New(color.Faint).SprintFunc()
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current agent queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				cfg = config.Defaults()
			}

			api := backend.NewClient(cfg.Backend.BaseURL)
			snap, err := api.FetchQueue(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching queue from %s: %w", cfg.Backend.BaseURL, err)
			}

			fmt.Println()
			fmt.Println("  callboard agent queue")
			fmt.Println("  ────────────────────────────────────────")
			fmt.Printf("  Agents:     %d\n", snap.Summary.Total)
			fmt.Printf("  Available:  %s\n", statusAvailable(snap.Summary.Available))
			fmt.Printf("  Busy:       %s\n", statusBusy(snap.Summary.Busy))
			fmt.Printf("  Offline:    %s\n", statusOffline(snap.Summary.Offline))
			fmt.Println()

			if len(snap.Agents) == 0 {
				fmt.Println("  No agents in the queue.")
				fmt.Println()
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "AGENT\tSTATUS\tSIP\tLAST UPDATE\n") //nolint:errcheck // CLI output
			for _, a := range snap.Agents {
				sip := "-"
				if a.SIPRegistered {
					sip = "registered"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", //nolint:errcheck // CLI output
					a.Name, colorState(a.Status), sip, a.LastUpdate)
			}
			return tw.Flush()
		},
	}
}

func colorState(st backend.AgentState) string {
	switch st {
	case backend.AgentAvailable:
		return statusAvailable(string(st))
	case backend.AgentBusy:
		return statusBusy(string(st))
	default:
		return statusOffline(string(st))
	}
}
