// Package normalize canonicalizes addon base URLs. Two addons are the same
// addon iff their comparison keys are equal.
package normalize

import "strings"

const (
	stremioScheme  = "stremio://"
	httpsScheme    = "https://"
	manifestSuffix = "/manifest.json"
)

// Canonical rewrites a raw addon URL into its canonical base form: leading
// and trailing whitespace trimmed, the stremio:// scheme rewritten to
// https://, a /manifest.json suffix stripped, trailing slashes stripped.
// Case is preserved — this is the form shown to the user, stored, and handed
// to the manifest fetcher. Canonical never fails; input that carries no
// recognizable scheme passes through unchanged and simply will not match
// anything meaningful.
func Canonical(rawURL string) string {
	u := strings.TrimSpace(rawURL)

	if len(u) >= len(stremioScheme) && strings.EqualFold(u[:len(stremioScheme)], stremioScheme) {
		u = httpsScheme + u[len(stremioScheme):]
	}

	// Trailing slashes are trimmed before the suffix check too, so
	// ".../manifest.json/" reduces all the way to the base URL.
	u = strings.TrimRight(u, "/")

	if len(u) >= len(manifestSuffix) && strings.EqualFold(u[len(u)-len(manifestSuffix):], manifestSuffix) {
		u = u[:len(u)-len(manifestSuffix)]
	}

	u = strings.TrimRight(u, "/")

	return u
}

// Key returns the comparison key for a raw addon URL: the canonical form
// folded to lower case. The key is used solely for equality checks — never
// for display, storage, or fetching.
func Key(rawURL string) string {
	return strings.ToLower(Canonical(rawURL))
}
