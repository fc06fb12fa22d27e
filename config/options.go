package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cloudchase/plugincheck/registry"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project config file read from the project root.
const FileName = ".plugincheck.yaml"

// Options holds everything a run needs to locate the project, its installed
// plugins and the package registry.
type Options struct {
	// Root is the project root directory.
	Root string `yaml:"-"`

	// PluginsDir is where plugins are installed, relative to Root unless absolute.
	PluginsDir string `yaml:"plugins_dir"`

	// ProjectManifest holds the cordovaPlugins declarations, relative to Root
	// unless absolute.
	ProjectManifest string `yaml:"project_manifest"`

	RegistryURL string `yaml:"registry_url"`

	Debug   bool `yaml:"debug"`
	NoColor bool `yaml:"no_color"`
}

// DefaultOptions returns the layout of a stock Cordova/Ionic project.
func DefaultOptions() Options {
	return Options{
		Root:            ".",
		PluginsDir:      "plugins",
		ProjectManifest: "package.json",
		RegistryURL:     registry.DefaultURL,
	}
}

// PluginsPath returns the absolute-or-root-relative plugins directory.
func (o Options) PluginsPath() string { return o.resolve(o.PluginsDir) }

// ManifestPath returns the absolute-or-root-relative project manifest path.
func (o Options) ManifestPath() string { return o.resolve(o.ProjectManifest) }

func (o Options) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.Root, p)
}

// Load overlays the YAML file at path onto base. A missing file leaves base
// untouched; an unreadable or malformed one is an error. Empty values in the
// file do not clear defaults.
func Load(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("config: read %s: %w", path, err)
	}

	var file Options
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, fmt.Errorf("config: parse %s: %w", path, err)
	}

	out := base
	if file.PluginsDir != "" {
		out.PluginsDir = file.PluginsDir
	}
	if file.ProjectManifest != "" {
		out.ProjectManifest = file.ProjectManifest
	}
	if file.RegistryURL != "" {
		out.RegistryURL = file.RegistryURL
	}
	out.Debug = out.Debug || file.Debug
	out.NoColor = out.NoColor || file.NoColor
	return out, nil
}
