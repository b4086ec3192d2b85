package models

// AppBuildInfo carries the build metadata injected via ldflags and shown on
// the TUI build-info overlay.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// Normalize replaces empty fields with "N/A" so the overlay never renders
// blank values on dev builds.
func (b AppBuildInfo) Normalize() AppBuildInfo {
	if b.Version == "" {
		b.Version = "N/A"
	}
	if b.Date == "" {
		b.Date = "N/A"
	}
	if b.Commit == "" {
		b.Commit = "N/A"
	}
	return b
}
