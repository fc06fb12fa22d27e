package inventory

import (
	"errors"
	"fmt"

	"github.com/cloudchase/plugincheck/project"
	"github.com/hashicorp/go-hclog"
)

// Reader turns declarations into records by probing the Store.
type Reader struct {
	store  *Store
	logger hclog.Logger
}

// NewReader creates a Reader. A nil logger discards output.
func NewReader(store *Store, logger hclog.Logger) *Reader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reader{store: store, logger: logger.Named("inventory")}
}

// Read returns one record per spec, in order. Plugins are read one at a time.
func (r *Reader) Read(specs []project.Spec) ([]Record, error) {
	records := make([]Record, 0, len(specs))
	for _, spec := range specs {
		rec, err := r.ReadOne(spec)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadOne probes a single plugin. When plugin.xml is missing the folder is
// considered not installed and package.json is not consulted.
func (r *Reader) ReadOne(spec project.Spec) (Record, error) {
	rec := Record{Name: spec.Name, Folder: spec.Folder, Expected: spec.Version}

	desc, err := r.store.DescriptorVersion(spec.Folder)
	switch {
	case errors.Is(err, ErrNotFound):
		r.logger.Debug("descriptor missing, skipping manifest", "plugin", spec.Name, "path", r.store.DescriptorPath(spec.Folder))
		return rec, nil
	case err != nil:
		return Record{}, fmt.Errorf("read descriptor for %s: %w", spec.Name, err)
	}
	rec.DescriptorVersion = desc

	man, err := r.store.ManifestVersion(spec.Folder)
	switch {
	case errors.Is(err, ErrNotFound):
		r.logger.Debug("manifest missing", "plugin", spec.Name, "path", r.store.ManifestPath(spec.Folder))
	case err != nil:
		return Record{}, fmt.Errorf("read manifest for %s: %w", spec.Name, err)
	default:
		rec.ManifestVersion = man
	}

	r.logger.Debug("read plugin", "plugin", spec.Name, "folder", spec.Folder,
		"descriptor", rec.DescriptorVersion, "manifest", rec.ManifestVersion)
	return rec, nil
}
