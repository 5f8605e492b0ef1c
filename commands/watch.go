package commands

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/guidebook/watcher"
)

// NewWatchCommand creates the watch subcommand.
func NewWatchCommand() *cobra.Command {
	var (
		configPath string
		flags      formatFlags
	)

	cmd := &cobra.Command{
		Use:   "watch <pattern>...",
		Short: "Re-render guide documents whenever they change",
		Long: `Watch renders every matching guide once, then keeps running and
re-renders a guide each time its file changes. Stop with Ctrl-C.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			opts := flags.apply(cmd, cfg.Format.Options())

			paths, err := ResolveGuides(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no guide files match %v", args)
			}

			renderOne := func(path string) {
				document, err := renderGuideFile(path, opts)
				if err != nil {
					slog.Error("Render failed", "guide", path, "error", err)
					return
				}
				target := outputPathFor(path, cfg)
				if err := writeDocument(target, document); err != nil {
					slog.Error("Write failed", "guide", path, "error", err)
					return
				}
				slog.Info("Rendered", "guide", path, "output", target)
			}

			for _, path := range paths {
				renderOne(path)
			}

			w, err := watcher.New(paths, cfg.Watch.GetDebounceDelay(), slog.Default())
			if err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			defer w.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			w.Start(ctx)

			for {
				select {
				case <-ctx.Done():
					slog.Info("Watch stopped")
					return nil
				case event, ok := <-w.Events():
					if !ok {
						return nil
					}
					renderOne(event.Path)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (default .guidebook.yaml)")
	flags.register(cmd)

	return cmd
}
