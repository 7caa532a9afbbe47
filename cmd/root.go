package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/websearch-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "websearch-api",
	Short: "Web search aggregation API server",
	Long: `Web Search API - an aggregated web search service with provider fallback

This API runs each query through a prioritized chain of search providers
(SearXNG meta-search, Google Custom Search, Brave Search, DuckDuckGo
Instant Answers) and normalizes their responses into one result shape.
When every live provider fails it degrades to clearly-flagged synthetic
results instead of erroring.

Features:
  • Ordered provider fallback with first-success short circuit
  • Per-user 30-day search quotas with free/pro/plus plans
  • Related-search suggestion generation
  • Per-client request rate limiting`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	// Version and help commands don't need config
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
