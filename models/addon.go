package models

// AddonRef describes one installed addon source. URL is the canonical base
// URL: no trailing slash, no "/manifest.json" suffix, original case preserved.
// Equality between addons is decided by normalized comparison keys, never by
// raw string equality on URL.
type AddonRef struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
