package languages

import "regexp"

// dashComment is shared with Lua, which uses the same -- line comments.
var dashComment = regexp.MustCompile(`[ \t]*--.*`)

var sqlLanguage = Language{
	Name:       "SQL",
	Extensions: []string{".sql"},
	SingleLine: dashComment,
	Block:      cFamily.Block,
}
