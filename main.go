// package main is the entry point for the docs-preview tool
package main

import (
	"log/slog"
	"os"

	configcmd "github.com/alan/docs-preview/cmd/config"
	synccmd "github.com/alan/docs-preview/cmd/sync"
	"github.com/alan/docs-preview/cmd/teardown"
	"github.com/alan/docs-preview/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	var configFile string
	var logLevel string
	var logFormat string

	rootCmd := &cobra.Command{
		Use:   "docs-preview",
		Short: "Publish pull request previews of an OpenAPI spec to the docs platform",
		Long: `docs-preview is a CLI tool run from pull request workflows. It syncs an
OpenAPI spec file to a preview version of the hosted documentation, named after
the branch, and comments on the pull request with a preview link.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogger(logLevel, logFormat)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigFile, "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "text", "Log format (text, json)")

	// Create commands with access to the global config file
	rootCmd.AddCommand(synccmd.NewSyncCmd(&configFile, config.LoadConfig))
	rootCmd.AddCommand(teardown.NewTeardownCmd(&configFile, config.LoadConfig))
	rootCmd.AddCommand(configcmd.NewConfigCmd(&configFile, config.LoadConfig, config.SaveConfig))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	// Logs go to stderr so stdout carries only the summary and workflow commands
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
}
