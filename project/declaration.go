package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind tells which of the two authored shapes a Declaration came from.
type Kind int

const (
	// KindString is the "name[@version]" shorthand.
	KindString Kind = iota
	// KindObject is {locator, id?, version?}.
	KindObject
)

// Declaration is one entry of the project's cordovaPlugins list.
type Declaration struct {
	Kind Kind

	// Raw is set for KindString.
	Raw string

	// Locator, ID and Version are set for KindObject.
	Locator string
	ID      string
	Version string
}

// Spec is a declaration normalized into the fields the rest of the pipeline
// works with.
type Spec struct {
	// Name is the registry name, used for display and lookups.
	Name string
	// Version is the expected version or range; empty when not pinned.
	Version string
	// Folder is the directory under plugins/ holding the installation.
	Folder string
}

type objectForm struct {
	Locator string `json:"locator"`
	ID      string `json:"id,omitempty"`
	Version string `json:"version,omitempty"`
}

// UnmarshalJSON accepts either a JSON string or an object.
func (d *Declaration) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty plugin declaration")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Declaration{Kind: KindString, Raw: s}
		return nil
	case '{':
		var obj objectForm
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Locator == "" && obj.ID == "" {
			return fmt.Errorf("plugin declaration needs a locator or an id: %s", data)
		}
		*d = Declaration{Kind: KindObject, Locator: obj.Locator, ID: obj.ID, Version: obj.Version}
		return nil
	default:
		return fmt.Errorf("plugin declaration must be a string or an object, got %s", data)
	}
}

// MarshalJSON writes the declaration back in the shape it was authored in.
func (d Declaration) MarshalJSON() ([]byte, error) {
	if d.Kind == KindString {
		return json.Marshal(d.Raw)
	}
	return json.Marshal(objectForm{Locator: d.Locator, ID: d.ID, Version: d.Version})
}

// Spec normalizes the declaration.
//
// An object whose locator carries an "@" is split like the string form and
// its id/version fields only influence the folder. Other objects (git URLs and
// the like) are described by id@version, with the locator standing in when no
// id was given.
func (d Declaration) Spec() Spec {
	var s Spec
	switch {
	case d.Kind == KindObject && versionSeparator(d.Locator) >= 0:
		s.Name, s.Version = SplitNameVersion(d.Locator)
	case d.Kind == KindObject:
		s.Name, s.Version = d.ID, d.Version
		if s.Name == "" {
			s.Name = d.Locator
		}
	default:
		s.Name, s.Version = SplitNameVersion(d.Raw)
	}

	s.Folder = s.Name
	if d.Kind == KindObject && d.ID != "" {
		s.Folder = d.ID
	}
	return s
}

// SplitNameVersion splits "name@version" on the first "@". A leading "@" is
// an npm scope, not a separator.
func SplitNameVersion(s string) (name, version string) {
	i := versionSeparator(s)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

func versionSeparator(s string) int {
	if strings.HasPrefix(s, "@") {
		i := strings.Index(s[1:], "@")
		if i < 0 {
			return -1
		}
		return i + 1
	}
	return strings.Index(s, "@")
}
