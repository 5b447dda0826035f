package manual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownCommand(t *testing.T) {
	text, err := Lookup("daily-summary")
	require.NoError(t, err)
	assert.Contains(t, text, "daily-summary")
	assert.Contains(t, text, "YYYY-MM-DD")
}

func TestLookup_Aliases(t *testing.T) {
	top, err := Lookup("manual")
	require.NoError(t, err)

	for _, alias := range []string{"man", "help", "h", "weather", " manual "} {
		text, err := Lookup(alias)
		require.NoError(t, err, "alias %q", alias)
		assert.Equal(t, top, text, "alias %q", alias)
	}
}

func TestLookup_UnknownCommand(t *testing.T) {
	_, err := Lookup("no-such-command")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCommands_CoverEveryDocumentedEntry(t *testing.T) {
	names, err := Commands()
	require.NoError(t, err)

	expected := []string{
		"coords", "location", "hourly-forecast", "rain-forecast", "alerts",
		"daily-summary", "meteostat", "single-day", "daily", "hourly",
		"monthly", "normals", "stations", "summary",
	}
	assert.ElementsMatch(t, expected, names)
}
