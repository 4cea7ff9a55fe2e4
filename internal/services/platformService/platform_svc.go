package platformservice

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/redjax/whoami/internal/logging"
	"github.com/redjax/whoami/internal/services/platformService/locale"
)

// Service is the entry point callers use to query facts about the local
// machine. Results are never cached; every call re-queries the OS.
type Service struct {
	target Target
	log    logging.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTarget answers queries from t instead of the running machine.
func WithTarget(t Target) Option {
	return func(s *Service) {
		s.target = t
	}
}

// WithRoot reads file-based facts from below root, e.g. a mounted host
// filesystem in a container.
func WithRoot(root string) Option {
	return func(s *Service) {
		s.target = NativeTarget(root)
	}
}

// WithLogger sets the logger queries are traced to.
func WithLogger(log logging.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// New returns a Service for the running machine.
func New(opts ...Option) *Service {
	s := &Service{log: logging.Discard()}

	for _, opt := range opts {
		opt(s)
	}

	if s.target == nil {
		s.target = NativeTarget("/")
	}

	return s
}

// query runs fn and traces the outcome.
func query[T any](s *Service, f Fact, fn func() (T, error)) (T, error) {
	log := s.log.WithField("fact", f.Key())
	log.Debug("querying")

	v, err := fn()
	if err != nil {
		log.WithError(err).Debug("query failed")
		return v, err
	}

	log.WithField("value", v).Debug("query succeeded")

	return v, nil
}

// infallible adapts a query that cannot fail.
func infallible[T any](fn func() T) func() (T, error) {
	return func() (T, error) {
		return fn(), nil
	}
}

// RealName returns the user's full name from the user database.
func (s *Service) RealName() (string, error) {
	return query(s, FactRealName, s.target.RealName)
}

// Username returns the effective user's login name.
func (s *Service) Username() (string, error) {
	return query(s, FactUserName, s.target.Username)
}

// DeviceName returns the machine's pretty name, e.g. "Jane's MacBook".
func (s *Service) DeviceName() (string, error) {
	return query(s, FactDeviceName, s.target.DeviceName)
}

// Hostname returns the machine's network host name.
func (s *Service) Hostname() (string, error) {
	return query(s, FactHostName, s.target.Hostname)
}

// Distro returns the OS name and version, e.g. "Debian GNU/Linux 12 (bookworm)".
func (s *Service) Distro() (string, error) {
	return query(s, FactDistro, s.target.Distro)
}

func (s *Service) DesktopEnv() DesktopEnv {
	d, _ := query(s, FactDesktopEnv, infallible(s.target.DesktopEnv))
	return d
}

func (s *Service) Platform() Platform {
	p, _ := query(s, FactPlatform, infallible(s.target.Platform))
	return p
}

// Arch returns the CPU architecture reported by uname.
func (s *Service) Arch() (Arch, error) {
	return query(s, FactArch, s.target.Arch)
}

// Langs returns the user's preferred languages, most general first.
func (s *Service) Langs() []string {
	l, _ := query(s, FactLangs, infallible(s.target.Langs))
	return l
}

// LanguageTags returns Langs as BCP 47 tags.
func (s *Service) LanguageTags() []language.Tag {
	return locale.Tags(s.Langs())
}

// Query returns the display string of a single fact.
func (s *Service) Query(f Fact) (string, error) {
	switch f {
	case FactRealName:
		return s.RealName()
	case FactUserName:
		return s.Username()
	case FactDeviceName:
		return s.DeviceName()
	case FactHostName:
		return s.Hostname()
	case FactDistro:
		return s.Distro()
	case FactDesktopEnv:
		return s.DesktopEnv().String(), nil
	case FactPlatform:
		return s.Platform().String(), nil
	case FactArch:
		a, err := s.Arch()
		if err != nil {
			return "", err
		}
		return a.String(), nil
	case FactLangs:
		return joinLangs(s.Langs()), nil
	default:
		return "", fmt.Errorf("unknown fact %v", f)
	}
}

func joinLangs(langs []string) string {
	return strings.Join(langs, ", ")
}
