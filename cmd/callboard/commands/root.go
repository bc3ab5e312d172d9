package commands

import (
	"github.com/spf13/cobra"
)

var cfgFile string

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "callboard",
		Short: "Admin console for the call-center platform",
		Long:  "Callboard — agent queue monitoring, audit log review, and telephony configuration for the call-center backend. Single binary.",
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "callboard.yaml", "config file path")

	root.AddCommand(
		newServeCmd(),
		newInitCmd(),
		newStatusCmd(),
		newLogsCmd(),
		newVersionCmd(),
	)

	return root
}
