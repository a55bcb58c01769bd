package zoneid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chronofield/chronofield/internal/zoneid"
)

func TestRegistryContains(t *testing.T) {
	r := zoneid.New([]string{"Europe/London", "UTC"})

	assert.True(t, r.Contains("Europe/London"))
	assert.True(t, r.Contains("UTC"))
	assert.False(t, r.Contains("Mars/OlympusMons"))
}

func TestRegistryAll(t *testing.T) {
	r := zoneid.New([]string{"UTC", "Europe/London"})
	assert.ElementsMatch(t, []string{"UTC", "Europe/London"}, r.All())
}

func TestNilRegistry(t *testing.T) {
	var r *zoneid.Registry
	assert.False(t, r.Contains("UTC"))
	assert.Nil(t, r.All())
}

func TestDefaultRegistryKnowsUTC(t *testing.T) {
	assert.True(t, zoneid.Default().Contains("UTC"))
	assert.True(t, zoneid.Default().Contains("Europe/London"))
	assert.False(t, zoneid.Default().Contains("Not/AZone"))
}
