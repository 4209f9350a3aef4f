// Package version compares the short "major.minor" runtime versions written
// into composer constraints.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare compares two versions. It returns -1, 0, or 1.
// "8.1" is read as 8.1.0 and a leading "v" is ignored.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parse(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// AtLeast reports whether v is greater than or equal to floor.
func AtLeast(v, floor string) (bool, error) {
	cmp, err := Compare(v, floor)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

func parse(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(v), "v"))
}
