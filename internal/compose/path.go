package compose

import "strings"

// isHostPath reports whether a short-form volume source names a host path
// rather than a named volume.
func isHostPath(src string) bool {
	if src == "" {
		return false
	}
	switch src[0] {
	case '.', '~', '/', '\\':
		return true
	}
	return hasDriveRoot(src)
}

// isPlaceholder reports whether s is an unexpanded variable such as ${DATA}.
func isPlaceholder(s string) bool {
	return strings.HasPrefix(s, "${")
}

// IsAbsolute reports whether p is absolute on either POSIX or Windows.
// The result does not depend on the host OS.
func IsAbsolute(p string) bool {
	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, `\`) {
		return true
	}
	return hasDriveRoot(p)
}

// hasDriveRoot matches "C:\..." and "C:/...".
func hasDriveRoot(p string) bool {
	return len(p) >= 3 && isDriveLetter(p[:1]) && p[1] == ':' && (p[2] == '/' || p[2] == '\\')
}

func isDriveLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func startsWithSeparator(s string) bool {
	return strings.HasPrefix(s, "/") || strings.HasPrefix(s, `\`)
}
