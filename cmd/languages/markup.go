package languages

import "regexp"

// HTML and XML only have block comments.
var markup = Language{
	Name:       "HTML/XML",
	Extensions: []string{".html", ".htm", ".xml"},
	Block:      regexp.MustCompile(`(?s)<!--.*?-->`),
}
