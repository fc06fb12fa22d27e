package checker

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cloudchase/plugincheck/config"
	"github.com/cloudchase/plugincheck/inventory"
	"github.com/cloudchase/plugincheck/project"
	"github.com/cloudchase/plugincheck/registry"
	"github.com/cloudchase/plugincheck/report"
	"github.com/hashicorp/go-hclog"
)

// Checker runs the read -> fetch -> reconcile pipeline for one project.
type Checker struct {
	opts   config.Options
	store  *inventory.Store
	reader *inventory.Reader
	client *registry.Client
	logger hclog.Logger
}

// New creates a Checker. httpClient may be nil.
func New(opts config.Options, httpClient *http.Client, logger hclog.Logger) *Checker {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	store := inventory.NewStore(opts.PluginsPath())
	return &Checker{
		opts:   opts,
		store:  store,
		reader: inventory.NewReader(store, logger),
		client: registry.NewClient(opts.RegistryURL, httpClient, logger),
		logger: logger,
	}
}

// Store exposes the plugin store, e.g. to list undeclared folders.
func (c *Checker) Store() *inventory.Store { return c.store }

// Specs loads and normalizes the project's declarations.
func (c *Checker) Specs() ([]project.Spec, error) {
	path := c.opts.ManifestPath()
	m, err := project.Load(path)
	if err != nil {
		return nil, err
	}
	specs := m.Specs()
	c.logger.Debug("loaded declarations", "manifest", path, "count", len(specs))
	return specs, nil
}

// Inventory returns the on-disk state of every declared plugin, without
// contacting the registry.
func (c *Checker) Inventory(_ context.Context) ([]inventory.Record, error) {
	specs, err := c.Specs()
	if err != nil {
		return nil, err
	}
	return c.reader.Read(specs)
}

// Check runs the whole pipeline. Progress dots for registry lookups go to
// progress. On any failure no report is produced.
func (c *Checker) Check(ctx context.Context, progress io.Writer) (*report.Report, error) {
	records, err := c.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.fillLatest(ctx, records, progress); err != nil {
		return nil, err
	}
	return report.Reconcile(records), nil
}

// Plugin returns the fully populated record for one declared plugin, matched
// by display name or folder name.
func (c *Checker) Plugin(ctx context.Context, name string) (*inventory.Record, error) {
	specs, err := c.Specs()
	if err != nil {
		return nil, err
	}
	for _, spec := range specs {
		if spec.Name != name && spec.Folder != name {
			continue
		}
		rec, err := c.reader.ReadOne(spec)
		if err != nil {
			return nil, err
		}
		if rec.Latest, err = c.client.Latest(ctx, rec.Name); err != nil {
			return nil, err
		}
		return &rec, nil
	}
	return nil, fmt.Errorf("plugin '%s' is not declared in %s", name, c.opts.ManifestPath())
}

func (c *Checker) fillLatest(ctx context.Context, records []inventory.Record, progress io.Writer) error {
	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Name
	}
	latest, err := c.client.LatestAll(ctx, names, progress)
	if err != nil {
		return err
	}
	for i := range records {
		records[i].Latest = latest[i]
	}
	return nil
}
