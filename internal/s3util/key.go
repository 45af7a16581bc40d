package s3util

import "strings"

// EnsureSlash appends a trailing slash to a non-empty prefix.
func EnsureSlash(prefix string) string {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		return prefix + "/"
	}
	return prefix
}

// JoinKey joins an optional prefix and an object name into a full key.
func JoinKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return EnsureSlash(prefix) + name
}
