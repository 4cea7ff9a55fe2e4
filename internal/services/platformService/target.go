package platformservice

// Target answers fact queries for one operating system family. Every call
// re-reads the underlying OS source.
type Target interface {
	RealName() (string, error)
	Username() (string, error)
	DeviceName() (string, error)
	Hostname() (string, error)
	Distro() (string, error)
	DesktopEnv() DesktopEnv
	Platform() Platform
	Arch() (Arch, error)
	Langs() []string
}

// NewTarget returns the Target implementation for platform p, reading from sys.
func NewTarget(p Platform, sys System) Target {
	base := unixTarget{sys: sys, platform: p}

	switch p.Kind {
	case PlatformMacOS, PlatformIos:
		return darwinTarget{base}
	case PlatformIllumos:
		return illumosTarget{base}
	case PlatformWindows:
		return windowsTarget{base}
	default:
		return base
	}
}

// NativeTarget returns the Target for the running machine, with files
// resolved under root ("/" when empty).
func NativeTarget(root string) Target {
	return NewTarget(CurrentPlatform(), DefaultSystem(root))
}
