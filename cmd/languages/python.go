package languages

import "regexp"

// Triple-quoted strings are treated as block comments. Strictly they are
// string literals, but stripping them matches what users expect for
// module/function docstrings.
var python = Language{
	Name:       "Python",
	Extensions: []string{".py", ".pyw"},
	SingleLine: regexp.MustCompile(`[ \t]*#.*`),
	Block:      regexp.MustCompile(`(?s)""".*?"""|'''.*?'''`),
}
