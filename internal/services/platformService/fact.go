package platformservice

import (
	"fmt"
	"strings"
)

// Fact selects one piece of identity information.
type Fact int

const (
	FactRealName Fact = iota
	FactUserName
	FactDeviceName
	FactHostName
	FactDistro
	FactDesktopEnv
	FactPlatform
	FactArch
	FactLangs
)

// AllFacts lists every fact in display order.
var AllFacts = []Fact{
	FactRealName,
	FactUserName,
	FactDeviceName,
	FactHostName,
	FactDistro,
	FactDesktopEnv,
	FactPlatform,
	FactArch,
	FactLangs,
}

var factKeys = map[Fact]string{
	FactRealName:   "realname",
	FactUserName:   "username",
	FactDeviceName: "devicename",
	FactHostName:   "hostname",
	FactDistro:     "distro",
	FactDesktopEnv: "desktop",
	FactPlatform:   "platform",
	FactArch:       "arch",
	FactLangs:      "langs",
}

var factAliases = map[string]Fact{
	"name":         FactRealName,
	"user":         FactUserName,
	"device":       FactDeviceName,
	"host":         FactHostName,
	"os":           FactDistro,
	"desktopenv":   FactDesktopEnv,
	"de":           FactDesktopEnv,
	"architecture": FactArch,
	"lang":         FactLangs,
	"languages":    FactLangs,
}

// ParseFact resolves a fact from its key or one of its aliases, ignoring case.
func ParseFact(s string) (Fact, error) {
	key := strings.ToLower(strings.TrimSpace(s))

	for f, k := range factKeys {
		if k == key {
			return f, nil
		}
	}

	if f, ok := factAliases[key]; ok {
		return f, nil
	}

	return 0, fmt.Errorf("unknown fact %q", s)
}

// Key returns the machine-friendly name of the fact, e.g. "devicename".
func (f Fact) Key() string {
	if k, ok := factKeys[f]; ok {
		return k
	}

	return fmt.Sprintf("fact(%d)", int(f))
}

func (f Fact) String() string {
	return f.Key()
}
