package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"
)

// Client queries an npm-compatible registry for published versions.
type Client struct {
	baseURL string
	http    *http.Client
	logger  hclog.Logger
}

// NewClient creates a Client for baseURL. A nil httpClient uses
// http.DefaultClient, so lookups have no timeout of their own.
func NewClient(baseURL string, httpClient *http.Client, logger hclog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger.Named("registry"),
	}
}

func (c *Client) distTagsURL(name string) string {
	// Scoped names travel as a single segment: @scope%2Fname.
	return c.baseURL + "/-/package/" + url.PathEscape(name) + "/dist-tags"
}

// Latest returns the latest published version of name.
func (c *Client) Latest(ctx context.Context, name string) (string, error) {
	u := c.distTagsURL(name)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", &LookupError{Name: name, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &LookupError{Name: name, Err: fmt.Errorf("%w: %v", ErrUnreachable, err)}
	}
	defer resp.Body.Close()

	c.logger.Debug("lookup", "package", name, "url", u, "status", resp.StatusCode, "elapsed", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", &LookupError{Name: name, Err: ErrPackageNotFound}
	case resp.StatusCode != http.StatusOK:
		return "", &LookupError{Name: name, Err: fmt.Errorf("%w: HTTP %d", ErrUnreachable, resp.StatusCode)}
	}

	var tags DistTags
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return "", &LookupError{Name: name, Err: fmt.Errorf("%w: decode dist-tags: %v", ErrUnreachable, err)}
	}
	latest, ok := tags.Latest()
	if !ok {
		return "", &LookupError{Name: name, Err: fmt.Errorf("%w: no latest tag", ErrPackageNotFound)}
	}
	return latest, nil
}

// LatestAll looks up every name concurrently and returns the results in the
// order of names. Each lookup writes one "." to progress when it finishes,
// whether or not it succeeded. If any lookup fails no results are returned;
// all lookups still run to completion.
func (c *Client) LatestAll(ctx context.Context, names []string, progress io.Writer) ([]string, error) {
	if progress == nil {
		progress = io.Discard
	}

	latest := make([]string, len(names))
	var (
		g  errgroup.Group
		mu sync.Mutex // guards progress
	)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			defer func() {
				mu.Lock()
				io.WriteString(progress, ".")
				mu.Unlock()
			}()

			v, err := c.Latest(ctx, name)
			if err != nil {
				return err
			}
			latest[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return latest, nil
}
