package cmd

import (
	"fmt"
	"strings"

	"github.com/cloudchase/plugincheck/checker"
	"github.com/cloudchase/plugincheck/report"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed plugins without contacting the registry",
	Long: `Show declared and installed versions of every plugin in the project, plus
declared plugins whose folder is missing and installed plugin folders that no
declaration refers to. The registry is not queried, so the Newest column is
empty.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	c := checker.New(opts, nil, logger)

	records, err := c.Inventory(cmd.Context())
	if err != nil {
		return fmt.Errorf("list plugins: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := report.Render(out, report.Reconcile(records), report.NewTheme(out, opts.NoColor)); err != nil {
		return err
	}

	store := c.Store()
	declared := make(map[string]bool, len(records))
	var missing []string
	for _, rec := range records {
		declared[rec.Folder] = true
		if !store.Exists(rec.Folder) {
			missing = append(missing, rec.Folder)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(out, "Declared but not installed: %s\n", strings.Join(missing, ", "))
	}

	folders, err := store.Folders()
	if err != nil {
		return fmt.Errorf("list plugin folders: %w", err)
	}
	var extra []string
	for _, f := range folders {
		if !declared[f] {
			extra = append(extra, f)
		}
	}
	if len(extra) > 0 {
		fmt.Fprintf(out, "Installed but not declared: %s\n", strings.Join(extra, ", "))
	}
	return nil
}
