package languages

import "regexp"

// Block removal runs before line removal, so a lone --[[ left over from an
// unterminated block is consumed to end of line by the -- pattern.
var lua = Language{
	Name:       "Lua",
	Extensions: []string{".lua"},
	SingleLine: dashComment,
	Block:      regexp.MustCompile(`(?s)--\[\[.*?\]\]`),
}
