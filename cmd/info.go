package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/cloudchase/plugincheck/checker"
	"github.com/cloudchase/plugincheck/inventory"
	"github.com/cloudchase/plugincheck/report"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <plugin>",
	Short: "Show version details for one plugin",
	Long:  "Display where a declared plugin is installed and every version known for it. The plugin may be named by npm name or folder.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	name := args[0]

	c := checker.New(opts, nil, logger)
	rec, err := c.Plugin(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("plugin '%s': %w", name, err)
	}

	out := cmd.OutOrStdout()
	theme := report.NewTheme(out, opts.NoColor)
	rep := report.Reconcile([]inventory.Record{*rec})
	row := rep.Rows[0]

	fmt.Fprintf(out, "Name:          %s\n", rec.Name)
	fmt.Fprintf(out, "Folder:        %s\n", filepath.Join(c.Store().PluginsDir(), rec.Folder))
	fmt.Fprintf(out, "Expected:      %s\n", theme.Paint(row.Expected.Emphasis, row.Expected.Text))
	fmt.Fprintf(out, "plugin.xml:    %s\n", orAbsent(rec.DescriptorVersion))
	fmt.Fprintf(out, "package.json:  %s\n", orAbsent(rec.ManifestVersion))
	fmt.Fprintf(out, "Installed:     %s\n", theme.Paint(row.Installed.Emphasis, row.Installed.Text))
	fmt.Fprintf(out, "Newest:        %s\n", theme.Paint(row.Latest.Emphasis, row.Latest.Text))

	for _, w := range rep.Warnings {
		fmt.Fprintln(out, theme.Paint(report.Warn, w.Text))
	}
	return nil
}

func orAbsent(v string) string {
	if v == "" {
		return report.Absent
	}
	return v
}
