package platformservice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/redjax/whoami/internal/services/platformService/capabilities"
	"github.com/redjax/whoami/internal/services/platformService/parsers"
)

const unknownValue = "unknown"

// ReleaseInfo identifies the distribution by its os-release identifiers and
// the family and package manager that go with it.
type ReleaseInfo struct {
	ID             string `json:"id" yaml:"id"`
	IDLike         string `json:"id_like,omitempty" yaml:"id_like,omitempty"`
	VersionID      string `json:"version_id,omitempty" yaml:"version_id,omitempty"`
	Family         string `json:"family" yaml:"family"`
	PackageManager string `json:"package_manager" yaml:"package_manager"`
}

type distroFamily struct {
	family         string
	packageManager string
}

var (
	familyDebian = distroFamily{"Debian", "apt"}
	familyRedHat = distroFamily{"RedHat", "dnf"}
	familySUSE   = distroFamily{"SUSE", "zypper"}
	familyArch   = distroFamily{"Arch", "pacman"}
	familyAlpine = distroFamily{"Alpine", "apk"}
)

// distroFamilies maps os-release ID and ID_LIKE tokens to a family.
var distroFamilies = map[string]distroFamily{
	"debian":              familyDebian,
	"ubuntu":              familyDebian,
	"linuxmint":           familyDebian,
	"pop":                 familyDebian,
	"raspbian":            familyDebian,
	"fedora":              familyRedHat,
	"rhel":                familyRedHat,
	"centos":              familyRedHat,
	"rocky":               familyRedHat,
	"almalinux":           familyRedHat,
	"opensuse":            familySUSE,
	"opensuse-leap":       familySUSE,
	"opensuse-tumbleweed": familySUSE,
	"suse":                familySUSE,
	"sles":                familySUSE,
	"arch":                familyArch,
	"manjaro":             familyArch,
	"endeavouros":         familyArch,
	"alpine":              familyAlpine,
}

// releaser is implemented by targets that can describe their distribution.
type releaser interface {
	Release() (ReleaseInfo, error)
}

// ParseRelease builds a ReleaseInfo from os-release text. ID decides the
// family; ID_LIKE is consulted, in order, when ID is not known.
func ParseRelease(text string) (ReleaseInfo, error) {
	id, err := parsers.Field(text, "ID", "")
	if err != nil {
		return ReleaseInfo{}, err
	}

	info := ReleaseInfo{
		ID:             strings.ToLower(id),
		Family:         unknownValue,
		PackageManager: unknownValue,
	}

	// Optional fields
	if like, err := parsers.Field(text, "ID_LIKE", ""); err == nil {
		info.IDLike = strings.ToLower(like)
	}
	if version, err := parsers.Field(text, "VERSION_ID", ""); err == nil {
		info.VersionID = version
	}

	candidates := append([]string{info.ID}, strings.Fields(info.IDLike)...)
	for _, c := range candidates {
		if fam, ok := distroFamilies[c]; ok {
			info.Family = fam.family
			info.PackageManager = fam.packageManager
			break
		}
	}

	return info, nil
}

func (t unixTarget) Release() (ReleaseInfo, error) {
	data, err := t.sys.readRecord(osReleasePath)
	if errors.Is(err, ErrNotFound) {
		if lib, libErr := t.sys.readRecord(osReleaseLibPath); libErr == nil {
			data, err = lib, nil
		}
	}
	if err != nil {
		return ReleaseInfo{}, err
	}

	return ParseRelease(data)
}

func (t darwinTarget) Release() (ReleaseInfo, error) {
	info := ReleaseInfo{ID: "macos", Family: "Darwin", PackageManager: unknownValue}

	if pm := capabilities.FirstAvailable("brew", "port"); pm != "" {
		info.PackageManager = pm
	}

	return info, nil
}

func (t windowsTarget) Release() (ReleaseInfo, error) {
	// winget ships with Windows, so it is assumed when nothing else is found
	info := ReleaseInfo{ID: "windows", Family: "Windows", PackageManager: "winget"}

	if pm := capabilities.FirstAvailable("scoop", "winget", "choco"); pm != "" {
		info.PackageManager = pm
	}

	return info, nil
}

// Release describes the distribution the machine runs.
func (s *Service) Release() (ReleaseInfo, error) {
	r, ok := s.target.(releaser)
	if !ok {
		return ReleaseInfo{}, fmt.Errorf("release info for %s: %w", s.target.Platform(), errors.ErrUnsupported)
	}

	return query(s, FactDistro, r.Release)
}
