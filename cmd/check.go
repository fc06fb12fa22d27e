package cmd

import (
	"fmt"

	"github.com/cloudchase/plugincheck/checker"
	"github.com/cloudchase/plugincheck/report"
	"github.com/spf13/cobra"
)

func runCheck(cmd *cobra.Command, _ []string) error {
	c := checker.New(opts, nil, logger)

	rep, err := c.Check(cmd.Context(), cmd.ErrOrStderr())
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return report.Render(out, rep, report.NewTheme(out, opts.NoColor))
}
