package tui

import (
	"cmp"
	"strings"
)

// BuildInfo holds build-time metadata for display in the TUI.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// String formats the build as "version (commit) date", leaving out parts
// that are unknown. An empty BuildInfo reads "dev".
func (b BuildInfo) String() string {
	parts := []string{cmp.Or(b.Version, "dev")}
	if b.Commit != "" {
		parts = append(parts, "("+b.Commit+")")
	}
	if b.Date != "" {
		parts = append(parts, b.Date)
	}
	return strings.Join(parts, " ")
}
