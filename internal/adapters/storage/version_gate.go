package storage

import "github.com/Masterminds/semver/v3"

// legacyPriorityCutoff is the first schema version that stores priorities as
// {name, done} objects. Older files hold plain name strings.
var legacyPriorityCutoff = semver.MustParse("1.2.0")

// isLegacyPriorityFormat reports whether a document written by version v
// stores priorities as plain strings. A missing version is the oldest format.
func isLegacyPriorityFormat(v *semver.Version) bool {
	return v == nil || v.LessThan(legacyPriorityCutoff)
}
