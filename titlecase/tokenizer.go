package titlecase

import (
	"regexp"
	"strings"
)

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// Lines splits text on line terminators. Empty text yields a single empty
// line.
func Lines(text string) []string {
	return lineBreak.Split(text, -1)
}

// Words splits a line on runs of tabs and spaces, dropping empty tokens.
func Words(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
}

func splitMap(word, sep string, fn func(string) string) string {
	parts := strings.Split(word, sep)
	for i := range parts {
		parts[i] = fn(parts[i])
	}
	return strings.Join(parts, sep)
}
