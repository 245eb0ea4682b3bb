package languages

import (
	"regexp"
	"strings"
)

// blankRuns matches three or more consecutive newlines, which collapse to a
// single blank line.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// RemoveComments strips the comments of the named language from code and
// returns the cleaned text. Unknown language names return code unchanged.
//
// The pipeline: delete every block comment (non-greedy, may span lines),
// then strip line comments line by line, then collapse runs of blank lines
// and trim the result. A line whose only content was a comment is dropped;
// a line that was blank to begin with is kept.
//
// A block comment start with no matching end token is left in place: RE2's
// non-greedy match needs to see the closing token before it matches at all.
func RemoveComments(code, language string) string {
	lang, ok := Get(language)
	if !ok {
		return code
	}

	processed := code

	if lang.Block != nil {
		processed = lang.Block.ReplaceAllString(processed, "")
	}

	if lang.SingleLine != nil {
		lines := strings.Split(processed, "\n")
		kept := make([]string, 0, len(lines))
		for _, line := range lines {
			originallyBlank := strings.TrimSpace(line) == ""
			cleaned := lang.SingleLine.ReplaceAllString(line, "")
			if strings.TrimSpace(cleaned) != "" || originallyBlank {
				kept = append(kept, cleaned)
			}
		}
		processed = strings.Join(kept, "\n")
	}

	processed = blankRuns.ReplaceAllString(processed, "\n\n")
	return strings.TrimSpace(processed)
}
