package platformservice

// Facts is every identity fact collected in one pass. Facts that could not
// be read are left empty and their error is recorded in Errors by fact key.
type Facts struct {
	RealName   string            `json:"realname" yaml:"realname"`
	Username   string            `json:"username" yaml:"username"`
	DeviceName string            `json:"devicename" yaml:"devicename"`
	Hostname   string            `json:"hostname" yaml:"hostname"`
	Distro     string            `json:"distro" yaml:"distro"`
	DesktopEnv string            `json:"desktop" yaml:"desktop"`
	Platform   string            `json:"platform" yaml:"platform"`
	Arch       string            `json:"arch" yaml:"arch"`
	Langs      []string          `json:"langs" yaml:"langs"`
	Errors     map[string]string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Get returns the collected value of f as a display string.
func (f *Facts) Get(fact Fact) string {
	switch fact {
	case FactRealName:
		return f.RealName
	case FactUserName:
		return f.Username
	case FactDeviceName:
		return f.DeviceName
	case FactHostName:
		return f.Hostname
	case FactDistro:
		return f.Distro
	case FactDesktopEnv:
		return f.DesktopEnv
	case FactPlatform:
		return f.Platform
	case FactArch:
		return f.Arch
	case FactLangs:
		return joinLangs(f.Langs)
	default:
		return ""
	}
}

// Err returns the error recorded for fact, if any.
func (f *Facts) Err(fact Fact) string {
	return f.Errors[fact.Key()]
}

// Gather queries every fact once. Individual failures do not stop the
// collection.
func (s *Service) Gather() *Facts {
	facts := &Facts{Errors: map[string]string{}}

	for _, fact := range AllFacts {
		if fact == FactLangs {
			facts.Langs = s.Langs()
			continue
		}

		value, err := s.Query(fact)
		if err != nil {
			facts.Errors[fact.Key()] = err.Error()
			continue
		}

		facts.set(fact, value)
	}

	return facts
}

func (f *Facts) set(fact Fact, value string) {
	switch fact {
	case FactRealName:
		f.RealName = value
	case FactUserName:
		f.Username = value
	case FactDeviceName:
		f.DeviceName = value
	case FactHostName:
		f.Hostname = value
	case FactDistro:
		f.Distro = value
	case FactDesktopEnv:
		f.DesktopEnv = value
	case FactPlatform:
		f.Platform = value
	case FactArch:
		f.Arch = value
	}
}
