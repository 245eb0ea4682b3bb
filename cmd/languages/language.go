// Package languages holds the comment-pattern registry and the comment
// removal logic. Matching is purely textual: comment tokens inside string
// literals are treated as real comments. That keeps the behavior simple and
// predictable, and it is sufficient for most code.
package languages

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultLanguage is assumed when a filename's extension is unmapped
// (or the filename has no extension at all).
const DefaultLanguage = "Python"

// Language describes the comment syntax of one language (or family of
// languages sharing the same syntax, like the C family).
type Language struct {
	// Name is the identifier shown in selectors, e.g. "Python".
	Name string
	// Extensions lists the file extensions mapped to this language,
	// lowercase with the leading dot (e.g. ".py").
	Extensions []string
	// SingleLine matches a line comment from its start token through end of
	// line, including the horizontal whitespace just before the token.
	// Nil if the language has no line comments.
	SingleLine *regexp.Regexp
	// Block matches a block comment non-greedily; the pattern may span
	// lines. Nil if the language has no block comments.
	Block *regexp.Regexp
}

// registry stores all language profiles by name. order preserves
// registration order so selection UIs see a stable listing.
var (
	registry = make(map[string]Language)
	order    []string
	byExt    = make(map[string]string)
)

// Built-in profiles register here in a fixed order: the order is what
// Names returns, so it is part of the observable behavior.
func init() {
	Register(python)
	Register(cFamily)
	Register(markup)
	Register(sqlLanguage)
	Register(lua)
}

// Register adds a language profile to the registry. Registering a name a
// second time replaces the earlier profile but keeps its position in Names.
func Register(lang Language) {
	if _, seen := registry[lang.Name]; !seen {
		order = append(order, lang.Name)
	}
	registry[lang.Name] = lang
	for _, ext := range lang.Extensions {
		byExt[strings.ToLower(ext)] = lang.Name
	}
}

// Get returns the profile registered under name.
func Get(name string) (Language, bool) {
	lang, ok := registry[name]
	return lang, ok
}

// Names returns all registered language names in registration order.
func Names() []string {
	names := make([]string, len(order))
	copy(names, order)
	return names
}

// ForFilename returns the name of the language mapped to filename's
// extension. The lookup is case-insensitive; unmapped extensions fall back
// to DefaultLanguage, so this never fails.
func ForFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if name, ok := byExt[ext]; ok {
		return name
	}
	return DefaultLanguage
}

// MapExtension maps ext (with leading dot) onto an already registered
// language, overriding any builtin mapping for that extension.
func MapExtension(ext, name string) error {
	if _, ok := registry[name]; !ok {
		return fmt.Errorf("unknown language %q", name)
	}
	byExt[strings.ToLower(ext)] = name
	return nil
}
