// Package engineversion compares RDS engine version strings. These are not
// semver: Aurora MySQL reports versions like "5.7.mysql_aurora.2.11.2", so
// comparison works on the numeric dot-segments only.
package engineversion

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse extracts the numeric dot-separated segments of an engine version
// string. Non-numeric segments are dropped rather than treated as errors.
func Parse(version string) []int {
	var parts []int
	for _, seg := range strings.Split(version, ".") {
		if !isNumeric(seg) {
			continue
		}
		n, err := strconv.Atoi(seg)
		if err != nil {
			continue
		}
		parts = append(parts, n)
	}
	return parts
}

// Compare returns -1 if a is older than b, 0 if they are the same version,
// and 1 if a is newer. The shorter version is zero-padded, so "14" and
// "14.0" compare equal.
func Compare(a, b string) int {
	av, bv := Parse(a), Parse(b)
	for len(av) < len(bv) {
		av = append(av, 0)
	}
	for len(bv) < len(av) {
		bv = append(bv, 0)
	}
	for i := range av {
		switch {
		case av[i] < bv[i]:
			return -1
		case av[i] > bv[i]:
			return 1
		}
	}
	return 0
}

// Major returns the leading numeric segment of an engine version.
func Major(version string) (int, error) {
	seg, _, _ := strings.Cut(version, ".")
	n, err := strconv.Atoi(seg)
	if err != nil {
		return 0, fmt.Errorf("engine version %q has no numeric major segment", version)
	}
	return n, nil
}

// IsMajorUpgrade reports whether moving from current to target crosses a
// major engine version boundary.
func IsMajorUpgrade(current, target string) (bool, error) {
	cur, err := Major(current)
	if err != nil {
		return false, err
	}
	tgt, err := Major(target)
	if err != nil {
		return false, err
	}
	return tgt > cur, nil
}

// isNumeric reports whether s is non-empty and all ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
