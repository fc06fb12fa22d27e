package report

import (
	"fmt"

	"github.com/cloudchase/plugincheck/inventory"
)

// Absent is shown for any value that is not known.
const Absent = "-"

// Headers are the table column titles.
var Headers = []string{"Plugin name", "Expected", "Installed", "Newest"}

// Notices are printed after the warnings on every run.
var Notices = []string{
	"If a plugin's npm name differs from the id in its plugin.xml, declare it in cordovaPlugins as an object",
	`so the installed folder can be found: { "locator": "<npm-name>@<version>", "id": "<plugin.xml id>" }`,
}

// WarningKind classifies a Warning.
type WarningKind int

const (
	VersionMismatch WarningKind = iota
	NameMismatch
)

// Warning is a problem found while reconciling one plugin.
type Warning struct {
	Kind   WarningKind
	Plugin string
	Text   string
}

// Cell is one table value and how to emphasize it.
type Cell struct {
	Text     string
	Emphasis Emphasis
}

// Row is one plugin's line in the table.
type Row struct {
	Name      Cell
	Expected  Cell
	Installed Cell
	Latest    Cell
}

// Cells returns the row in column order.
func (r Row) Cells() []Cell { return []Cell{r.Name, r.Expected, r.Installed, r.Latest} }

// Report is the reconciled view of every declared plugin.
type Report struct {
	Rows     []Row
	Warnings []Warning
}

// Reconcile compares expected, installed and latest versions of each record,
// in order. Warnings are kept in the order they are found.
func Reconcile(records []inventory.Record) *Report {
	rep := &Report{Rows: make([]Row, 0, len(records))}
	for _, rec := range records {
		row, warnings := reconcileOne(rec)
		rep.Rows = append(rep.Rows, row)
		rep.Warnings = append(rep.Warnings, warnings...)
	}
	return rep
}

func reconcileOne(rec inventory.Record) (Row, []Warning) {
	var warnings []Warning
	installed := rec.Installed()

	if rec.ManifestVersion != "" && rec.DescriptorVersion != "" && rec.ManifestVersion != rec.DescriptorVersion {
		warnings = append(warnings, Warning{
			Kind:   VersionMismatch,
			Plugin: rec.Name,
			Text: fmt.Sprintf("Plugin %s: package.json says version %s but plugin.xml says %s",
				rec.Name, rec.ManifestVersion, rec.DescriptorVersion),
		})
	}

	name := rec.Name
	if rec.Renamed() {
		warnings = append(warnings, Warning{
			Kind:   NameMismatch,
			Plugin: rec.Name,
			Text: fmt.Sprintf("Plugin %s is installed as %s: its npm name does not match the id in plugin.xml",
				rec.Name, rec.Folder),
		})
		name = fmt.Sprintf("%s (%s)", rec.Name, rec.Folder)
	}

	row := Row{
		Name:      Cell{Text: name},
		Expected:  cell(rec.Expected),
		Installed: cell(installed),
		Latest:    cell(rec.Latest),
	}

	if rec.Latest != "" && installed != "" {
		if cmp, ok := CompareVersions(rec.Latest, installed); ok {
			switch {
			case cmp > 0:
				row.Latest.Emphasis = Up
			case cmp < 0:
				row.Latest.Emphasis = Down
			}
		}
	}

	if rec.Expected != "" && installed != "" {
		if in, ok := Satisfies(installed, rec.Expected); ok && !in {
			row.Installed.Emphasis = Error
			row.Expected.Emphasis = Error
		}
	}

	return row, warnings
}

func cell(v string) Cell {
	if v == "" {
		return Cell{Text: Absent}
	}
	return Cell{Text: v}
}
