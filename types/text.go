package types

import (
	"regexp"
	"strings"
)

var (
	reInlineSpaces = regexp.MustCompile(`[^\S\n]+`)
	reBlankLines   = regexp.MustCompile(`\n{3,}`)
)

// tidyText trims every line, collapses runs of inline whitespace
// and keeps at most one blank line between paragraphs.
func tidyText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(reInlineSpaces.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	s = reBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func tidyOptional(s *string) *string {
	if s == nil {
		return nil
	}
	tidy := tidyText(*s)
	return &tidy
}
