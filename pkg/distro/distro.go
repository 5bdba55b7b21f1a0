package distro

import (
	"os"
	"sort"
	"strings"
)

// Family identifies a Linux packaging family, used to pick the right
// install hint when a prerequisite is missing.
type Family string

const (
	FamilyDebian  Family = "debian"
	FamilyFedora  Family = "fedora"
	FamilyArch    Family = "arch"
	FamilyAlpine  Family = "alpine"
	FamilyUnknown Family = "unknown"
)

// Releaser abstracts os-release access for testability.
type Releaser interface {
	ReadOSRelease() ([]byte, error)
}

// RealReleaser reads the host's /etc/os-release.
type RealReleaser struct{}

func (r *RealReleaser) ReadOSRelease() ([]byte, error) {
	return os.ReadFile("/etc/os-release")
}

// MockReleaser is a test double for Releaser.
type MockReleaser struct {
	Data []byte
	Err  error
}

func (m *MockReleaser) ReadOSRelease() ([]byte, error) {
	return m.Data, m.Err
}

// Detect classifies the host by its os-release ID, falling back to
// ID_LIKE for derivatives (Ubuntu, Manjaro, Rocky, ...). Unreadable or
// unrecognized os-release yields FamilyUnknown, never an error.
func Detect(r Releaser) Family {
	data, err := r.ReadOSRelease()
	if err != nil {
		return FamilyUnknown
	}

	fields := parseOSRelease(data)

	if f := classify(fields["ID"]); f != FamilyUnknown {
		return f
	}
	for _, like := range strings.Fields(fields["ID_LIKE"]) {
		if f := classify(like); f != FamilyUnknown {
			return f
		}
	}
	return FamilyUnknown
}

// parseOSRelease parses the flat KEY=VALUE format, stripping quotes.
func parseOSRelease(data []byte) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		fields[key] = value
	}
	return fields
}

func classify(id string) Family {
	switch strings.ToLower(id) {
	case "debian", "ubuntu", "linuxmint", "pop", "raspbian":
		return FamilyDebian
	case "fedora", "rhel", "centos", "rocky", "almalinux":
		return FamilyFedora
	case "arch", "manjaro", "endeavouros":
		return FamilyArch
	case "alpine", "postmarketos":
		return FamilyAlpine
	}
	return FamilyUnknown
}

// Hints maps packaging families to an install command for one tool.
type Hints map[Family]string

// For returns the hint lines to show for the given family. When the
// family is unknown every variant is listed so the user can pick.
func (h Hints) For(f Family) []string {
	if hint, ok := h[f]; ok {
		return []string{"install with: " + hint}
	}

	families := make([]string, 0, len(h))
	for fam := range h {
		families = append(families, string(fam))
	}
	sort.Strings(families)

	lines := make([]string, 0, len(h))
	for _, fam := range families {
		lines = append(lines, "install with ("+fam+"): "+h[Family(fam)])
	}
	return lines
}

// PackageHints builds the standard hint set for a package that carries
// the same name in every repository.
func PackageHints(pkg string) Hints {
	return Hints{
		FamilyDebian: "sudo apt install " + pkg,
		FamilyFedora: "sudo dnf install " + pkg,
		FamilyArch:   "sudo pacman -S " + pkg,
		FamilyAlpine: "sudo apk add " + pkg,
	}
}
