package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/guidebook/guide"
)

// NewCheckCommand creates the check subcommand.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <pattern>...",
		Short: "Validate guide documents without rendering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := ResolveGuides(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no guide files match %v", args)
			}

			failures := 0
			for _, path := range paths {
				if _, err := guide.Load(path); err != nil {
					failures++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n     %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "OK   %s\n", path)
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d guide(s) failed validation", failures, len(paths))
			}
			return nil
		},
	}

	return cmd
}
