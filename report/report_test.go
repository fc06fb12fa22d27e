package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/cloudchase/plugincheck/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
		ok   bool
	}{
		{"1.2.0", "1.0.0", 1, true},
		{"1.0.0", "1.0.0", 0, true},
		{"2.0.0", "10.0.0", -1, true},
		{"1.0.0-beta.2", "1.0.0", -1, true},
		{"1.0.0-beta.10", "1.0.0-beta.2", 1, true},
		{"1.0.0+build.5", "1.0.0", 0, true},
		{"not-a-version", "1.0.0", 0, false},
		{"1.0.0", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			cmp, ok := CompareVersions(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, cmp)
		})
	}
}

func TestCompareVersions_PropertyBased_NumericNotLexical(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.SliceOfN(rapid.IntRange(0, 200), 3, 3).Draw(t, "a")
		b := rapid.SliceOfN(rapid.IntRange(0, 200), 3, 3).Draw(t, "b")

		want := 0
		for i := range a {
			if a[i] != b[i] {
				want = 1
				if a[i] < b[i] {
					want = -1
				}
				break
			}
		}

		cmp, ok := CompareVersions(
			fmt.Sprintf("%d.%d.%d", a[0], a[1], a[2]),
			fmt.Sprintf("%d.%d.%d", b[0], b[1], b[2]),
		)
		require.True(t, ok)
		assert.Equal(t, want, cmp)
	})
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version, rng string
		in, ok       bool
	}{
		{"1.0.0", "1.0.0", true, true},
		{"2.5.0", "2.0.0", false, true},
		{"1.4.2", "^1.2.0", true, true},
		{"2.0.0", "^1.2.0", false, true},
		{"1.2.9", "~1.2.0", true, true},
		{"1.3.0", "~1.2.0", false, true},
		{"1.9.0", "1.x", true, true},
		{"1.5.0", "1.0.0 - 2.0.0", true, true},
		{"3.1.0", "<2 || >=3", true, true},
		{"1.0.0", "github:acme/x#v1", false, false},
		{"garbage", "^1.0.0", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.version+"_in_"+tt.rng, func(t *testing.T) {
			in, ok := Satisfies(tt.version, tt.rng)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.in, in)
		})
	}
}

func TestReconcile_EndToEndScenario(t *testing.T) {
	rep := Reconcile([]inventory.Record{
		{Name: "foo", Folder: "foo", Expected: "1.0.0", DescriptorVersion: "1.0.0", ManifestVersion: "1.0.0", Latest: "1.2.0"},
		{Name: "bar", Folder: "bar-id", Expected: "2.0.0", DescriptorVersion: "2.0.0", ManifestVersion: "2.5.0", Latest: "2.5.0"},
	})

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, Row{
		Name:      Cell{Text: "foo"},
		Expected:  Cell{Text: "1.0.0"},
		Installed: Cell{Text: "1.0.0"},
		Latest:    Cell{Text: "1.2.0", Emphasis: Up},
	}, rep.Rows[0])
	assert.Equal(t, Row{
		Name:      Cell{Text: "bar (bar-id)"},
		Expected:  Cell{Text: "2.0.0", Emphasis: Error},
		Installed: Cell{Text: "2.5.0", Emphasis: Error},
		Latest:    Cell{Text: "2.5.0"},
	}, rep.Rows[1])

	require.Len(t, rep.Warnings, 2)
	assert.Equal(t, VersionMismatch, rep.Warnings[0].Kind)
	assert.Equal(t, "bar", rep.Warnings[0].Plugin)
	assert.Contains(t, rep.Warnings[0].Text, "2.5.0")
	assert.Contains(t, rep.Warnings[0].Text, "2.0.0")
	assert.Equal(t, NameMismatch, rep.Warnings[1].Kind)
	assert.Contains(t, rep.Warnings[1].Text, "bar-id")
}

func TestReconcile_AbsentValues(t *testing.T) {
	rep := Reconcile([]inventory.Record{{Name: "ghost", Folder: "ghost"}})

	require.Len(t, rep.Rows, 1)
	for _, c := range rep.Rows[0].Cells()[1:] {
		assert.Equal(t, Cell{Text: Absent}, c)
	}
	assert.Empty(t, rep.Warnings)
}

func TestReconcile_Highlighting(t *testing.T) {
	tests := []struct {
		name      string
		rec       inventory.Record
		latest    Emphasis
		installed Emphasis
	}{
		{
			name:   "newer available uses semver not lexical order",
			rec:    inventory.Record{Name: "p", Folder: "p", ManifestVersion: "2.0.0", DescriptorVersion: "2.0.0", Latest: "10.0.0"},
			latest: Up,
		},
		{
			name:   "registry behind installed",
			rec:    inventory.Record{Name: "p", Folder: "p", DescriptorVersion: "3.0.0", Latest: "2.9.9"},
			latest: Down,
		},
		{
			name: "up to date",
			rec:  inventory.Record{Name: "p", Folder: "p", DescriptorVersion: "3.0.0", Latest: "3.0.0"},
		},
		{
			name: "caret range satisfied",
			rec:  inventory.Record{Name: "p", Folder: "p", Expected: "^1.2.0", ManifestVersion: "1.4.0", DescriptorVersion: "1.4.0", Latest: "1.4.0"},
		},
		{
			name:      "caret range violated",
			rec:       inventory.Record{Name: "p", Folder: "p", Expected: "^1.2.0", ManifestVersion: "2.0.0", DescriptorVersion: "2.0.0", Latest: "2.0.0"},
			installed: Error,
		},
		{
			name: "unparseable expected is not flagged",
			rec:  inventory.Record{Name: "p", Folder: "p", Expected: "github:acme/p#main", DescriptorVersion: "1.0.0", Latest: "1.0.0"},
		},
		{
			name: "nothing installed skips comparisons",
			rec:  inventory.Record{Name: "p", Folder: "p", Expected: "1.0.0", Latest: "9.0.0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := Reconcile([]inventory.Record{tt.rec}).Rows[0]
			assert.Equal(t, tt.latest, row.Latest.Emphasis)
			assert.Equal(t, tt.installed, row.Installed.Emphasis)
			assert.Equal(t, tt.installed, row.Expected.Emphasis)
		})
	}
}

func TestReconcile_ManifestPreferred(t *testing.T) {
	rep := Reconcile([]inventory.Record{
		{Name: "p", Folder: "p", ManifestVersion: "1.1.0", DescriptorVersion: "1.0.0"},
	})
	assert.Equal(t, "1.1.0", rep.Rows[0].Installed.Text)
	require.Len(t, rep.Warnings, 1)
	assert.Equal(t, VersionMismatch, rep.Warnings[0].Kind)
}

func TestReconcile_WarningsKeepEncounterOrder(t *testing.T) {
	rec := inventory.Record{Name: "dup", Folder: "dup-id", ManifestVersion: "1.0.1", DescriptorVersion: "1.0.0"}
	rep := Reconcile([]inventory.Record{rec, {Name: "ok", Folder: "ok"}, rec})

	require.Len(t, rep.Rows, 3)
	require.Len(t, rep.Warnings, 4)
	kinds := []WarningKind{rep.Warnings[0].Kind, rep.Warnings[1].Kind, rep.Warnings[2].Kind, rep.Warnings[3].Kind}
	assert.Equal(t, []WarningKind{VersionMismatch, NameMismatch, VersionMismatch, NameMismatch}, kinds)
}

func TestRender(t *testing.T) {
	rep := Reconcile([]inventory.Record{
		{Name: "foo", Folder: "foo", Expected: "1.0.0", DescriptorVersion: "1.0.0", ManifestVersion: "1.0.0", Latest: "1.2.0"},
		{Name: "bar", Folder: "bar-id", Expected: "2.0.0", DescriptorVersion: "2.0.0", ManifestVersion: "2.5.0", Latest: "2.5.0"},
		{Name: "ghost", Folder: "ghost", Latest: "0.1.0"},
	})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, NewTheme(&buf, true)))
	out := buf.String()

	assert.NotContains(t, out, "\x1b[", "no-color output must be plain")

	warnAt := strings.Index(out, rep.Warnings[0].Text)
	noticeAt := strings.Index(out, Notices[0])
	headerAt := strings.Index(out, "Plugin name")
	require.True(t, warnAt >= 0 && noticeAt >= 0 && headerAt >= 0, out)
	assert.Less(t, warnAt, noticeAt)
	assert.Less(t, noticeAt, headerAt)

	for _, h := range Headers {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "bar (bar-id)")

	lines := strings.Split(out, "\n")
	var ghost string
	for _, l := range lines {
		if strings.Contains(l, "ghost") {
			ghost = l
		}
	}
	require.NotEmpty(t, ghost)
	assert.Equal(t, 2, strings.Count(ghost, " "+Absent+" "))
	assert.Contains(t, ghost, "0.1.0")
}

func TestEmphasis_String(t *testing.T) {
	assert.Equal(t, "plain", Plain.String())
	assert.Equal(t, "warn", Warn.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
}
