package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloudchase/plugincheck/config"
	"github.com/cloudchase/plugincheck/logging"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// Version is overridden by ldflags.
var Version = "dev"

var (
	opts       = config.DefaultOptions()
	configPath string
	logger     = hclog.NewNullLogger()
)

var rootCmd = &cobra.Command{
	Use:   "plugincheck",
	Short: "Compare declared, installed and published Cordova plugin versions",
	Long: `Read the cordovaPlugins list from the project package.json, inspect each
installed plugin under plugins/, look up the newest version on the npm
registry and print a table highlighting anything out of line.

Nothing is installed or modified.`,
	Version:           Version,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadOptions,
	RunE:              runCheck,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&opts.Root, "root", opts.Root, "Project root directory")
	f.StringVar(&opts.RegistryURL, "registry", opts.RegistryURL, "npm registry URL")
	f.StringVar(&configPath, "config", "", "Config file (default <root>/"+config.FileName+")")
	f.BoolVar(&opts.Debug, "debug", false, "Write diagnostic logs to stderr")
	f.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
}

func loadOptions(cmd *cobra.Command, _ []string) error {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}
	opts.Root = root

	path := configPath
	if path == "" {
		path = filepath.Join(opts.Root, config.FileName)
	}
	loaded, err := config.Load(path, opts)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("registry") {
		loaded.RegistryURL = opts.RegistryURL
	}
	if os.Getenv("NO_COLOR") != "" {
		loaded.NoColor = true
	}
	opts = loaded

	logger = logging.New(opts.Debug, cmd.ErrOrStderr())
	logger.Debug("options", "root", opts.Root, "plugins", opts.PluginsPath(),
		"manifest", opts.ManifestPath(), "registry", opts.RegistryURL)
	return nil
}
