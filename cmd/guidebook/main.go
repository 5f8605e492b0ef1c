// Package main provides the guidebook binary entry point.
// Guidebook renders JSON game-run guide documents into formatted
// Markdown walkthroughs.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	// Register game modules via init()
	_ "github.com/c360studio/guidebook/game/darksouls3"

	"github.com/spf13/cobra"

	"github.com/c360studio/guidebook/commands"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "guidebook"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Render game-run guide documents to Markdown",
		Long: `Guidebook turns JSON guide documents - ordered walkthrough
instructions, run rules, and metadata - into formatted Markdown reports.

Guides are validated against their game module's instruction schema and
rendered deterministically; visibility options control which instructions
appear in the final document.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(commands.NewRenderCommand())
	cmd.AddCommand(commands.NewCheckCommand())
	cmd.AddCommand(commands.NewWatchCommand())
	cmd.AddCommand(commands.NewImportCommand())

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
