package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/killallgit/editor-api/internal/logging"
	"github.com/killallgit/editor-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "editor-api",
	Short: "Video Editor API server",
	Long: `Video Editor API - timeline, segment and text overlay editing for browser video

This API hosts editing sessions for a browser video editor. The browser owns
the <video> element; the server owns the session state and answers every
command with the engine commands the browser should apply.

Features:
  • Video library with upload, range streaming and thumbnails
  • Timeline scrubbing and shift-drag segment selection
  • Timed text overlays
  • Asynchronous exports with a cut list of kept ranges`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
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
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)

	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	// Skip config loading for commands that don't need it
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	// Initialize the configuration
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging installs the slog handler. Flags win over logging.level and
// logging.format from the configuration.
func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	jsonLogs, err := cmd.Flags().GetBool("json-logs")
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("log-level") {
		if configured := config.GetString("logging.level"); configured != "" {
			level = configured
		}
	}
	if !cmd.Flags().Changed("json-logs") {
		jsonLogs = strings.EqualFold(config.GetString("logging.format"), "json")
	}

	logging.Setup(level, jsonLogs)
	return nil
}
