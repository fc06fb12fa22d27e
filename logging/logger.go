package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// New returns the diagnostic logger. Without debug everything is discarded so
// the report on stdout stays clean.
func New(debug bool, w io.Writer) hclog.Logger {
	level := hclog.Error
	output := io.Discard

	if debug {
		level = hclog.Debug
		output = w
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "plugincheck",
		Level:  level,
		Output: output,
	})
}
