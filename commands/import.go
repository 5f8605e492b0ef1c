package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/guidebook/importer"
)

// NewImportCommand creates the import subcommand.
func NewImportCommand() *cobra.Command {
	var (
		pageURL    string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "import <page.html>",
		Short: "Bootstrap a guide document from a saved HTML walkthrough page",
		Long: `Import extracts the readable content of an HTML walkthrough page,
converts it to Markdown, and writes a guide JSON skeleton with the page
text as the description. Instructions are left for the author to fill in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			htmlPath := args[0]
			content, err := os.ReadFile(htmlPath)
			if err != nil {
				return fmt.Errorf("read page: %w", err)
			}

			skeleton, err := importer.NewConverter().Convert(content, pageURL)
			if err != nil {
				return err
			}
			data, err := skeleton.JSON()
			if err != nil {
				return err
			}

			target := outputPath
			if target == "" {
				base := filepath.Base(htmlPath)
				target = strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
				target = filepath.Join(filepath.Dir(htmlPath), target)
			}
			if err := os.WriteFile(target, data, 0644); err != nil {
				return fmt.Errorf("write guide skeleton: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", htmlPath, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&pageURL, "url", "", "Source URL recorded as the guide's first resource")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: page name with .json)")

	return cmd
}
