package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Sid-4215/marketbloom-backend/cmd/http"
	systemcmd "github.com/Sid-4215/marketbloom-backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "marketbloom",
	Short: "MarketBloom lead-capture backend.",
	Long: `MarketBloom is a lead-capture backend. It accepts contact-form
submissions, stores them, emails a notification per submission, and serves an
admin interface to review and delete stored submissions.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
