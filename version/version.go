package version

import "fmt"

// Tagline is the application's tagline used in help text and documentation
const Tagline = "A small planner for the few things that matter today"

// SchemaVersion is written into every data file. Files below 1.2.0 store
// priorities as plain strings.
const SchemaVersion = "1.3.0"

// Build information injected at build time via ldflags
var (
	Version   = "dev"     // Semantic version or "dev"
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("doer %s (schema: %s, commit: %s, built: %s, go: %s)",
		Version, SchemaVersion, Commit, Date, GoVersion)
}
