package main

import (
	"os"

	"github.com/cloudchase/plugincheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.PrintFatal(os.Stdout, err)
		os.Exit(1)
	}
}
