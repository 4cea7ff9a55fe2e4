package capabilities

import "os/exec"

// Returns path to a binary, if found (i.e. scutil -> /usr/sbin/scutil)
func Which(binary string) (string, error) {
	return exec.LookPath(binary)
}

// Test if a command is available, i.e. 'brew'
func IsCommandAvailable(binary string) bool {
	_, err := Which(binary)

	return err == nil
}

// FirstAvailable returns the first binary found in PATH, or "" when none are.
func FirstAvailable(binaries ...string) string {
	for _, b := range binaries {
		if IsCommandAvailable(b) {
			return b
		}
	}

	return ""
}
