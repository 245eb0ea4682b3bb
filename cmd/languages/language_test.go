package languages

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNamesOrder checks that the built-in languages list in registration
// order, which is what a selection UI should display.
func TestNamesOrder(t *testing.T) {
	names := Names()
	require.GreaterOrEqual(t, len(names), 5)
	assert.Equal(t, []string{
		"Python",
		"C/C++/Java/C#/JavaScript/Rust",
		"HTML/XML",
		"SQL",
		"Lua",
	}, names[:5])
}

// TestForFilename covers case-insensitive extension lookup and the Python
// fallback for unmapped or missing extensions.
func TestForFilename(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"foo.PY", "Python"},
		{"foo.unknownext", "Python"},
		{"noext", "Python"},
		{"script.pyw", "Python"},
		{"main.rs", "C/C++/Java/C#/JavaScript/Rust"},
		{"App.Java", "C/C++/Java/C#/JavaScript/Rust"},
		{"query.sql", "SQL"},
		{"index.htm", "HTML/XML"},
		{"config.XML", "HTML/XML"},
		{"init.lua", "Lua"},
		{"dir.with.dots/noext", "Python"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ForFilename(tc.filename), "filename: %s", tc.filename)
	}
}

// TestGet checks profile lookup for known and unknown names.
func TestGet(t *testing.T) {
	lang, ok := Get("Python")
	require.True(t, ok)
	assert.Equal(t, "Python", lang.Name)
	assert.NotNil(t, lang.SingleLine)
	assert.NotNil(t, lang.Block)

	html, ok := Get("HTML/XML")
	require.True(t, ok)
	assert.Nil(t, html.SingleLine)
	assert.NotNil(t, html.Block)

	_, ok = Get("COBOL")
	assert.False(t, ok)
}

// TestRegisterAndMapExtension exercises runtime registration, the path the
// YAML config uses for user-defined languages.
func TestRegisterAndMapExtension(t *testing.T) {
	Register(Language{
		Name:       "TOML",
		Extensions: []string{".toml"},
		SingleLine: regexp.MustCompile(`[ \t]*#.*`),
	})

	_, ok := Get("TOML")
	require.True(t, ok)
	assert.Equal(t, "TOML", ForFilename("Cargo.toml"))
	assert.Contains(t, Names(), "TOML")
	assert.Equal(t, "key = 1", RemoveComments("key = 1  # comment\n", "TOML"))

	// Overrides must target a registered language.
	assert.Error(t, MapExtension(".cfg", "NotRegistered"))
	require.NoError(t, MapExtension(".cfg", "TOML"))
	assert.Equal(t, "TOML", ForFilename("app.cfg"))
}
