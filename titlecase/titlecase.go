// Package titlecase converts text to title case: major words are
// capitalized while small words (articles, short prepositions and
// conjunctions) stay lowercase except at the edges of a phrase.
//
// Casing is decided word by word and then corrected at phrase boundaries.
// Initials, ampersand codes such as AT&T, names like D'Artagnan or
// MacDonald, abbreviations like e.g. and words with inner capitals like
// iPhone keep their special shape.
package titlecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// casing bundles the casers for a single call. cases.Caser is stateful and
// must not be shared between goroutines.
type casing struct {
	lower cases.Caser
	upper cases.Caser
}

func newCasing() *casing {
	return &casing{
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
	}
}

// capitalize upper-cases the first rune and lower-cases the rest.
func (c *casing) capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + c.lower.String(s[size:])
}

// Titlecase returns text in title case. Lines are processed independently
// and joined with "\n"; words inside a line are separated by single
// spaces.
func Titlecase(text string) string {
	c := newCasing()
	lines := Lines(text)
	processed := make([]string, 0, len(lines))
	for _, line := range lines {
		processed = append(processed, c.line(line))
	}
	return strings.Join(processed, "\n")
}

func (c *casing) line(line string) string {
	words := Words(line)
	for i, w := range words {
		words[i] = c.word(w)
	}
	result := strings.Join(words, " ")

	result = replaceSubmatchFunc(smallFirst, result, func(m []string, rest string) string {
		if !endsWord(m[0], rest) {
			return m[0]
		}
		return m[1] + c.capitalize(m[2])
	})
	result = replaceSubmatchFunc(smallLast, result, func(m []string, _ string) string {
		return m[1] + c.capitalize(m[2]+m[3])
	})
	result = replaceSubmatchFunc(subphrase, result, func(m []string, rest string) string {
		if !endsWord(m[0], rest) {
			return m[0]
		}
		return m[1] + c.capitalize(m[2])
	})
	return result
}

// word runs the rule cascade on a single token. The first matching rule
// wins, except that an all-caps word which is not initials is lowered and
// then goes through the remaining rules.
func (c *casing) word(word string) string {
	if m := ampersandJoin.FindStringSubmatch(word); m != nil {
		return c.upper.String(m[1]) + m[2] + word[len(m[0]):]
	}

	if allCaps.MatchString(word) {
		if ucInitials.MatchString(word) {
			return word
		}
		word = c.lower.String(word)
	}

	if aposSecond.MatchString(word) {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		if len(runes) > 2 {
			runes[2] = unicode.ToUpper(runes[2])
		}
		return string(runes)
	}

	if inlinePeriod.MatchString(word) || upperElsewhere.MatchString(word) {
		return word
	}

	if smallWord.MatchString(word) {
		return c.lower.String(word)
	}

	mac := macMc
	if isMacName(word) {
		mac = macName
	}
	if m := mac.FindStringSubmatch(word); m != nil && !isNonGaelic(word) {
		return c.capitalize(m[1]) + c.capitalize(m[2]) + word[len(m[0]):]
	}

	if strings.Contains(word, "/") && !strings.Contains(word, "//") {
		return splitMap(word, "/", upperFirst)
	}

	return splitMap(word, "-", upperFirst)
}

// upperFirst upper-cases the first letter of s when only punctuation
// precedes it.
func upperFirst(s string) string {
	loc := capFirst.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + strings.ToUpper(s[loc[0]:loc[1]]) + s[loc[1]:]
}

// replaceSubmatchFunc replaces every non-overlapping match of re in s with
// the result of fn, which receives the match followed by its groups, and
// the text after the match.
func replaceSubmatchFunc(re *regexp.Regexp, s string, fn func(m []string, rest string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var sb strings.Builder
	last := 0
	for _, loc := range matches {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		sb.WriteString(s[last:loc[0]])
		sb.WriteString(fn(groups, s[loc[1]:]))
		last = loc[1]
	}
	sb.WriteString(s[last:])
	return sb.String()
}
