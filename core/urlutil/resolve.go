// ABOUTME: URL reference resolution against an optional base URL
// ABOUTME: Total function shared by every extractor; degrades to the candidate on bad input

package urlutil

import (
	"net/url"
	"strings"
)

// Resolve resolves candidate against base and returns the result.
//
// The function never fails: an empty candidate, an already-absolute
// candidate, or a missing/unparsable base all return the candidate
// unchanged. Everything else follows RFC 3986 reference resolution,
// including dot-segment removal.
func Resolve(candidate, base string) string {
	if candidate == "" {
		return candidate
	}

	ref, err := url.Parse(candidate)
	if err != nil {
		return candidate
	}
	if ref.IsAbs() {
		return candidate
	}

	if base == "" {
		return candidate
	}
	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return candidate
	}

	// Protocol-relative: keep the reference's authority, borrow the scheme.
	if strings.HasPrefix(candidate, "//") {
		return baseURL.Scheme + ":" + candidate
	}

	// Root-relative needs an authority on the base.
	if strings.HasPrefix(candidate, "/") && baseURL.Host == "" {
		return candidate
	}

	return baseURL.ResolveReference(ref).String()
}

// IsURLShaped reports whether s looks like a URL worth resolving: an
// absolute URL, or a relative reference rather than a bare literal token.
func IsURLShaped(s string) bool {
	if s == "" {
		return false
	}
	if strings.Contains(s, "://") {
		return true
	}
	switch s[0] {
	case '/', '.', '?', '#':
		return true
	}
	return false
}
