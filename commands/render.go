package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/guidebook/render"
)

// formatFlags binds the per-render option overrides to a command.
type formatFlags struct {
	collapse     bool
	hideComments bool
	hideIDs      bool
	hideOptional bool
	hideSafety   bool
	ignoredRules []int
}

func (f *formatFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.collapse, "collapse", false, "Merge consecutive same-area instruction rows")
	cmd.Flags().BoolVar(&f.hideComments, "hide-comments", false, "Suppress comment sub-lines")
	cmd.Flags().BoolVar(&f.hideIDs, "hide-ids", false, "Drop the Id column")
	cmd.Flags().BoolVar(&f.hideOptional, "hide-optional", false, "Drop optional-flagged instructions")
	cmd.Flags().BoolVar(&f.hideSafety, "hide-safety", false, "Drop safety-flagged instructions")
	cmd.Flags().IntSliceVar(&f.ignoredRules, "ignore-rule", nil, "Rule id treated as not in force (repeatable)")
}

// apply overlays the flags the user actually set onto the configured
// defaults.
func (f *formatFlags) apply(cmd *cobra.Command, opts render.Options) render.Options {
	if cmd.Flags().Changed("collapse") {
		opts.CollapseInstructionGroups = f.collapse
	}
	if cmd.Flags().Changed("hide-comments") {
		opts.HideComments = f.hideComments
	}
	if cmd.Flags().Changed("hide-ids") {
		opts.HideInstructionID = f.hideIDs
	}
	if cmd.Flags().Changed("hide-optional") {
		opts.HideOptional = f.hideOptional
	}
	if cmd.Flags().Changed("hide-safety") {
		opts.HideSafety = f.hideSafety
	}
	if cmd.Flags().Changed("ignore-rule") {
		opts.IgnoredRules = f.ignoredRules
	}
	return opts
}

// NewRenderCommand creates the render subcommand.
func NewRenderCommand() *cobra.Command {
	var (
		configPath string
		outputPath string
		flags      formatFlags
	)

	cmd := &cobra.Command{
		Use:   "render <pattern>...",
		Short: "Render guide documents to Markdown",
		Long: `Render loads each matching guide JSON file, validates it, and writes
the formatted Markdown walkthrough. Patterns support * and ** wildcards.

With --output - the document is written to stdout (single guide only).`,
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
			if outputPath != "" && len(paths) > 1 {
				return fmt.Errorf("--output needs a single guide, got %d", len(paths))
			}

			for _, path := range paths {
				document, err := renderGuideFile(path, opts)
				if err != nil {
					return err
				}

				switch outputPath {
				case "-":
					fmt.Fprintln(cmd.OutOrStdout(), document)
				case "":
					target := outputPathFor(path, cfg)
					if err := writeDocument(target, document); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", path, target)
				default:
					if err := writeDocument(outputPath, document); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", path, outputPath)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (default .guidebook.yaml)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file, or - for stdout")
	flags.register(cmd)

	return cmd
}
