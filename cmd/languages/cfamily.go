package languages

import "regexp"

// One profile covers the whole C family: the comment syntax is identical
// across C, C++, Java, C#, JavaScript/TypeScript and Rust.
var cFamily = Language{
	Name:       "C/C++/Java/C#/JavaScript/Rust",
	Extensions: []string{".c", ".cpp", ".h", ".hpp", ".java", ".cs", ".js", ".ts", ".rs"},
	SingleLine: regexp.MustCompile(`[ \t]*//.*`),
	Block:      regexp.MustCompile(`(?s)/\*.*?\*/`),
}
