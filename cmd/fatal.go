package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/cloudchase/plugincheck/report"
)

// PrintFatal reports a failed run on w: a blank line, the error, then each
// wrapped cause down to the root.
func PrintFatal(w io.Writer, err error) {
	theme := report.NewTheme(w, opts.NoColor)

	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Paint(report.Error, "Error: "+err.Error()))
	for depth, cause := 0, errors.Unwrap(err); cause != nil; depth, cause = depth+1, errors.Unwrap(cause) {
		fmt.Fprintf(w, "  %*scaused by (%T): %v\n", depth*2, "", cause, cause)
	}
}
