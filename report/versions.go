package report

import "github.com/Masterminds/semver/v3"

// CompareVersions orders a and b by semantic-version precedence. ok is false
// when either side is not a version.
func CompareVersions(a, b string) (cmp int, ok bool) {
	va, err := semver.NewVersion(a)
	if err != nil {
		return 0, false
	}
	vb, err := semver.NewVersion(b)
	if err != nil {
		return 0, false
	}
	return va.Compare(vb), true
}

// Satisfies reports whether version falls inside the npm-style range rng
// ("1.2.3", "^1.2.0", "~1.2", "1.x", "1.0.0 - 2.0.0", "<2 || >=3"). ok is
// false when either cannot be parsed, e.g. a git ref.
func Satisfies(version, rng string) (in bool, ok bool) {
	c, err := semver.NewConstraint(rng)
	if err != nil {
		return false, false
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, false
	}
	return c.Check(v), true
}
