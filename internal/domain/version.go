package domain

// VersionInfo contains build-time version information, set with -ldflags
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}
