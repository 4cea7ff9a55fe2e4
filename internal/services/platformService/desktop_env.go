package platformservice

import "strings"

// DesktopKind enumerates known desktop environments.
type DesktopKind int

const (
	DesktopUnknown DesktopKind = iota
	DesktopAqua
	DesktopGnome
	DesktopLxde
	DesktopOpenbox
	DesktopI3
	DesktopUbuntu
	DesktopKde
	DesktopXfce
	DesktopMate
	DesktopCinnamon
	DesktopWindows
)

// unknownSession is reported when the session variable is not set at all.
const unknownSession = "Unknown"

var desktopNames = map[DesktopKind]string{
	DesktopAqua:     "Aqua",
	DesktopGnome:    "Gnome",
	DesktopLxde:     "LXDE",
	DesktopOpenbox:  "Openbox",
	DesktopI3:       "I3",
	DesktopUbuntu:   "Ubuntu",
	DesktopKde:      "KDE",
	DesktopXfce:     "XFCE",
	DesktopMate:     "Mate",
	DesktopCinnamon: "Cinnamon",
	DesktopWindows:  "Windows",
}

// sessionDesktops maps lower-cased DESKTOP_SESSION values to desktop environments.
var sessionDesktops = map[string]DesktopKind{
	"aqua":          DesktopAqua,
	"gnome":         DesktopGnome,
	"lxde":          DesktopLxde,
	"openbox":       DesktopOpenbox,
	"i3":            DesktopI3,
	"ubuntu":        DesktopUbuntu,
	"plasma5":       DesktopKde,
	"plasma":        DesktopKde,
	"plasmawayland": DesktopKde,
	"kde":           DesktopKde,
	"xfce":          DesktopXfce,
	"mate":          DesktopMate,
	"cinnamon":      DesktopCinnamon,
	"windows":       DesktopWindows,
}

// DesktopEnv is a classified desktop environment. Name always holds the raw
// session value.
type DesktopEnv struct {
	Kind DesktopKind
	Name string
}

// ClassifyDesktopEnv maps a session name to a DesktopEnv, ignoring case.
// Unrecognized names classify as DesktopUnknown and keep the raw value.
func ClassifyDesktopEnv(session string) DesktopEnv {
	return DesktopEnv{Kind: sessionDesktops[strings.ToLower(session)], Name: session}
}

// desktopFromEnv classifies the value of an environment variable, reporting
// Unknown("Unknown") when it is unset.
func desktopFromEnv(value string, ok bool) DesktopEnv {
	if !ok {
		return DesktopEnv{Kind: DesktopUnknown, Name: unknownSession}
	}

	return ClassifyDesktopEnv(value)
}

// IsUnknown reports whether the session name was not recognized.
func (d DesktopEnv) IsUnknown() bool {
	return d.Kind == DesktopUnknown
}

func (d DesktopEnv) String() string {
	if d.IsUnknown() {
		return "Unknown: " + d.Name
	}

	return desktopNames[d.Kind]
}
