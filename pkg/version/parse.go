package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version represents a dotted version with major, minor, patch components.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// versionRegex matches version patterns like 1.2.3, v1.2, 18, etc.
var versionRegex = regexp.MustCompile(`v?(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// Parse parses a version string into a Version. Plain dotted numeric
// strings are handled directly; anything else (prerelease tags, build
// metadata) is retried as full semver before being rejected.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil || matches[0] != s {
		return parseSemver(s)
	}

	return fromMatches(matches), nil
}

// ParseOptional parses s, returning nil for the empty string. Used for
// optional CLI flags and manifest fields.
func ParseOptional(s string) (*Version, error) {
	if s == "" {
		return nil, nil
	}
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Extract finds and parses the first version number in a string, e.g.
// the output of a --version command.
func Extract(s string) (Version, error) {
	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return Version{}, fmt.Errorf("no version found in: %q", s)
	}
	return fromMatches(matches), nil
}

func fromMatches(matches []string) Version {
	major, _ := strconv.Atoi(matches[1])
	var minor, patch int
	if matches[2] != "" {
		minor, _ = strconv.Atoi(matches[2])
	}
	if matches[3] != "" {
		patch, _ = strconv.Atoi(matches[3])
	}
	return Version{Major: major, Minor: minor, Patch: patch}
}

func parseSemver(s string) (Version, error) {
	sv, err := semver.NewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}
	return Version{
		Major: int(sv.Major()),
		Minor: int(sv.Minor()),
		Patch: int(sv.Patch()),
	}, nil
}
