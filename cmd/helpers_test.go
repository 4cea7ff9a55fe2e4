package cmd

import "runtime"

func isUnixLike() bool {
	switch runtime.GOOS {
	case "windows", "darwin", "ios", "illumos", "solaris":
		return false
	default:
		return true
	}
}
