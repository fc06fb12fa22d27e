package registry

import (
	"errors"
	"fmt"
)

// DefaultURL is the public npm registry.
const DefaultURL = "https://registry.npmjs.org"

// DistTags is the body of GET /-/package/<name>/dist-tags.
type DistTags map[string]string

// Latest returns the "latest" tag, if any.
func (d DistTags) Latest() (string, bool) {
	v, ok := d["latest"]
	return v, ok && v != ""
}

var (
	// ErrPackageNotFound means the registry does not know the package.
	ErrPackageNotFound = errors.New("package not found")
	// ErrUnreachable means the registry could not be queried.
	ErrUnreachable = errors.New("registry unreachable")
)

// LookupError carries the package a failed lookup was for.
type LookupError struct {
	Name string
	Err  error
}

func (e *LookupError) Error() string { return fmt.Sprintf("lookup %s: %v", e.Name, e.Err) }

func (e *LookupError) Unwrap() error { return e.Err }
