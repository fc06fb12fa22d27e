package inventory

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/net/html/charset"
)

const (
	DescriptorFile = "plugin.xml"
	ManifestFile   = "package.json"
)

// ErrNotFound means the probed file does not exist. Callers treat it as
// "no data", never as a failure.
var ErrNotFound = errors.New("not found")

// ParseError reports a descriptor or manifest that exists but cannot be
// decoded. It indicates a broken installation and aborts the run.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse %s: %v", e.Path, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// Store reads plugin installations under a plugins directory.
type Store struct {
	pluginsDir string
}

// NewStore creates a Store rooted at pluginsDir.
func NewStore(pluginsDir string) *Store {
	return &Store{pluginsDir: pluginsDir}
}

// PluginsDir returns the directory plugins are installed into.
func (s *Store) PluginsDir() string { return s.pluginsDir }

// DescriptorPath returns the plugin.xml path for folder.
func (s *Store) DescriptorPath(folder string) string {
	return filepath.Join(s.pluginsDir, folder, DescriptorFile)
}

// ManifestPath returns the package.json path for folder.
func (s *Store) ManifestPath(folder string) string {
	return filepath.Join(s.pluginsDir, folder, ManifestFile)
}

// Exists reports whether folder is present in the plugins directory.
func (s *Store) Exists(folder string) bool {
	info, err := os.Stat(filepath.Join(s.pluginsDir, folder))
	return err == nil && info.IsDir()
}

// Folders lists installed plugin folders in name order. A missing plugins
// directory yields no folders.
func (s *Store) Folders() ([]string, error) {
	entries, err := os.ReadDir(s.pluginsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var folders []string
	for _, e := range entries {
		if e.IsDir() {
			folders = append(folders, e.Name())
		}
	}
	sort.Strings(folders)
	return folders, nil
}

type descriptor struct {
	XMLName xml.Name
	Version string `xml:"version,attr"`
}

// DescriptorVersion returns the version attribute of the root <plugin>
// element of folder's plugin.xml.
func (s *Store) DescriptorVersion(folder string) (string, error) {
	path := s.DescriptorPath(folder)
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	var d descriptor
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&d); err != nil {
		return "", &ParseError{Path: path, Err: err}
	}
	if d.XMLName.Local != "plugin" {
		return "", &ParseError{Path: path, Err: fmt.Errorf("root element is <%s>, want <plugin>", d.XMLName.Local)}
	}
	return d.Version, nil
}

type manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ManifestVersion returns the version field of folder's package.json.
func (s *Store) ManifestVersion(folder string) (string, error) {
	path := s.ManifestPath(folder)
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return "", &ParseError{Path: path, Err: err}
	}
	return m.Version, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, err
	}
	return data, nil
}
