package parsers

import (
	"fmt"
	"strings"
)

const (
	dictStart   = "<dict>"
	dictEnd     = "</dict>"
	keyStart    = "<key>"
	keyEnd      = "</key>"
	stringStart = "<string>"
	stringEnd   = "</string>"
)

// Keys read from SystemVersion.plist / ServerVersion.plist.
const (
	KeyProductName        = "ProductName"
	KeyProductUserVersion = "ProductUserVisibleVersion"
	KeyProductVersion     = "ProductVersion"
)

// unknownProduct is used when a version is present without a product name.
const unknownProduct = "Mac OS (Unknown)"

type plistState int

const (
	stateScanning plistState = iota
	stateNameArmed
	stateVersionArmed
	stateDone
)

// productScanner walks the lines of a property list dictionary and keeps the
// product name and version strings. A name and a version can be armed at the
// same time; the name is filled first and the version stays pending.
type productScanner struct {
	state          plistState
	versionPending bool
	name           string
	version        string
	hasName        bool
	hasVer         bool
}

func (s *productScanner) armVersion() {
	if s.state == stateNameArmed {
		s.versionPending = true
		return
	}
	s.state = stateVersionArmed
}

// key arms a field. Unrelated keys leave the state unchanged.
func (s *productScanner) key(k string) {
	switch k {
	case KeyProductName:
		if s.state == stateVersionArmed {
			s.versionPending = true
		}
		s.state = stateNameArmed
	case KeyProductUserVersion:
		s.armVersion()
	case KeyProductVersion:
		if !s.hasVer {
			s.armVersion()
		}
	}
}

func (s *productScanner) value(v string) {
	switch s.state {
	case stateNameArmed:
		s.name, s.hasName = v, true
		s.state = stateScanning
		if s.versionPending {
			s.state = stateVersionArmed
			s.versionPending = false
		}
	case stateVersionArmed:
		s.version, s.hasVer = v, true
		s.state = stateScanning
	}
}

func (s *productScanner) line(line string) {
	line = strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(line, keyStart):
		s.key(strings.TrimSuffix(line[len(keyStart):], keyEnd))
	case strings.HasPrefix(line, stringStart):
		s.value(strings.TrimSuffix(line[len(stringStart):], stringEnd))
	}
}

func (s *productScanner) result() (string, error) {
	s.state = stateDone

	switch {
	case s.hasName && s.hasVer:
		return s.name + " " + s.version, nil
	case s.hasName:
		return s.name, nil
	case s.hasVer:
		return unknownProduct + " " + s.version, nil
	default:
		return "", fmt.Errorf("%w: no %s or %s in property list", ErrParse, KeyProductName, KeyProductUserVersion)
	}
}

// ProductVersion extracts "<ProductName> <version>" from the first top-level
// dictionary of an Apple property list. ProductUserVisibleVersion is preferred
// over ProductVersion for the version part.
func ProductVersion(data string) (string, error) {
	var s productScanner

	if start := strings.Index(data, dictStart); start >= 0 {
		body := data[start+len(dictStart):]
		if end := strings.Index(body, dictEnd); end >= 0 {
			for _, line := range strings.Split(body[:end], "\n") {
				s.line(line)
			}
		}
	}

	return s.result()
}
