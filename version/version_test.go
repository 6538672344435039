package version

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaVersionIsCurrentFormat(t *testing.T) {
	v, err := semver.StrictNewVersion(SchemaVersion)

	require.NoError(t, err)
	assert.False(t, v.LessThan(semver.MustParse("1.2.0")))
}

func TestInfo(t *testing.T) {
	assert.Contains(t, Info(), "doer "+Version)
	assert.Contains(t, Info(), "schema: "+SchemaVersion)
}
