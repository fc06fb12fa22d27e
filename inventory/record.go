package inventory

// Record is everything known about one declared plugin. Empty strings mean
// the value is absent.
type Record struct {
	Name   string
	Folder string

	Expected          string
	ManifestVersion   string
	DescriptorVersion string

	// Latest is filled in after the registry lookup.
	Latest string
}

// Installed returns the version used for reporting. The manifest wins over
// the descriptor because publishing to the registry requires it to be right.
func (r Record) Installed() string {
	if r.ManifestVersion != "" {
		return r.ManifestVersion
	}
	return r.DescriptorVersion
}

// Renamed reports whether the on-disk folder differs from the display name.
func (r Record) Renamed() bool { return r.Folder != r.Name }
