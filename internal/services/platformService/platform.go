package platformservice

import "runtime"

// PlatformKind enumerates operating system families.
type PlatformKind int

const (
	PlatformUnknown PlatformKind = iota
	PlatformLinux
	PlatformBsd
	PlatformWindows
	PlatformMacOS
	PlatformIllumos
	PlatformIos
	PlatformAndroid
	PlatformFuchsia
	PlatformRedox
)

var platformNames = map[PlatformKind]string{
	PlatformLinux:   "Linux",
	PlatformBsd:     "BSD",
	PlatformWindows: "Windows",
	PlatformMacOS:   "Mac OS",
	PlatformIllumos: "Illumos",
	PlatformIos:     "iOS",
	PlatformAndroid: "Android",
	PlatformFuchsia: "Fuchsia",
	PlatformRedox:   "Redox",
}

var goosPlatforms = map[string]PlatformKind{
	"linux":     PlatformLinux,
	"freebsd":   PlatformBsd,
	"openbsd":   PlatformBsd,
	"netbsd":    PlatformBsd,
	"dragonfly": PlatformBsd,
	"windows":   PlatformWindows,
	"darwin":    PlatformMacOS,
	"illumos":   PlatformIllumos,
	"solaris":   PlatformIllumos,
	"ios":       PlatformIos,
	"android":   PlatformAndroid,
	"fuchsia":   PlatformFuchsia,
	"redox":     PlatformRedox,
}

// Platform is a classified operating system family. Name holds the GOOS
// value it was derived from.
type Platform struct {
	Kind PlatformKind
	Name string
}

// PlatformFor classifies a GOOS value.
func PlatformFor(goos string) Platform {
	return Platform{Kind: goosPlatforms[goos], Name: goos}
}

// CurrentPlatform is the platform the binary was built for.
func CurrentPlatform() Platform {
	return PlatformFor(runtime.GOOS)
}

// IsUnknown reports whether the GOOS value was not recognized.
func (p Platform) IsUnknown() bool {
	return p.Kind == PlatformUnknown
}

func (p Platform) String() string {
	if p.IsUnknown() {
		return "Unknown: " + p.Name
	}

	return platformNames[p.Kind]
}
