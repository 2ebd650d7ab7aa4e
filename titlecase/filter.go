package titlecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball"
)

// small is the alternation of minor words kept lowercase inside a phrase.
const small = `a|of|an|or|and|the|for|to|from|in|al|da|das|de|del|e|el|en|la|las|los|para|por|um|uma|un|una|y|v\.?|via|vs\.?|with`

// smallLongest holds the same words with every word ahead of its prefixes,
// so the first alternative that matches is the whole word.
const smallLongest = `para|from|with|and|del|das|las|los|por|uma|una|the|for|via|vs\.?|an|of|or|to|in|al|da|de|el|en|la|um|un|a|e|y|v\.?`

// punct is the body of a character class holding the punctuation that may
// surround a word.
const punct = `!"#$%&'‘()*+,\-./:;?@\[\\\]_` + "`" + `{|}~`

var (
	smallWord      = regexp.MustCompile(`(?i)^(?:` + small + `)$`)
	inlinePeriod   = regexp.MustCompile(`(?i)[a-z][.][a-z]`)
	upperElsewhere = regexp.MustCompile(`^[` + punct + `]*?[a-zA-Z]+[A-Z]`)
	capFirst       = regexp.MustCompile(`^[` + punct + `]*?[A-Za-z]`)
	allCaps        = regexp.MustCompile(`^[A-Z\s` + punct + `]+$`)
	ucInitials     = regexp.MustCompile(`^(?:[A-Z]\.|[A-Z]\.[A-Z])+$`)
	aposSecond     = regexp.MustCompile(`(?i)^[dol]['‘]`)
	macMc          = regexp.MustCompile(`^([Mm]a?c)([a|c|d|g|l|m|p|t]+[a|d|e|h|l|o]+\w*)`)
	macName        = regexp.MustCompile(`^([Mm]a?c)(\w+)`)
	ampersandJoin  = regexp.MustCompile(`^(\w+[&+]\w+'?)([` + punct + `]*\w*)`)

	// The phrase patterns leave the boundary after the small word to
	// endsWord, which understands non-ASCII letters.
	smallFirst = regexp.MustCompile(`(?i)^([` + punct + `]*)(` + smallLongest + `)`)
	smallLast  = regexp.MustCompile(`(?i)(^|[^\p{L}\p{M}\p{N}_])(` + small + `)([` + punct + `]?)$`)
	subphrase  = regexp.MustCompile(`([:.;?!] )(` + smallLongest + `)`)
)

var (
	nonGaelic = initNonGaelic()
	macNames  = initMacNames()
)

func initNonGaelic() map[string]struct{} {
	// Ordinary words that look like Mac/Mc surnames, keyed by stem so
	// their inflections are covered too.
	words := []string{
		"macabre", "macaber", "macadam", "macalino", "machine",
		"macaroon", "mackerel",
	}
	stems := make(map[string]struct{}, len(words))
	for _, w := range words {
		stems[stem(w)] = struct{}{}
	}
	return stems
}

func initMacNames() map[string]struct{} {
	// Surnames whose remainder falls outside the consonant/vowel pattern.
	return map[string]struct{}{
		"macintosh": {}, "macintyre": {}, "macinnes": {}, "macinnis": {},
		"macisaac": {}, "macivor": {}, "macewan": {}, "macewen": {},
		"macbeth": {}, "macbride": {}, "macgregor": {}, "mackenzie": {},
		"mcintosh": {}, "mcintyre": {}, "mcinnes": {}, "mcewan": {},
		"mcbride": {}, "mcgregor": {}, "mckenzie": {}, "mckinley": {},
	}
}

func stem(word string) string {
	stemmed, err := snowball.Stem(word, "english", false)
	if err != nil {
		return word
	}
	return stemmed
}

// bareWord lower-cases word and drops trailing punctuation.
func bareWord(word string) string {
	return strings.ToLower(strings.TrimRightFunc(word, isPunct))
}

// isNonGaelic reports whether word, ignoring case, inflection and trailing
// punctuation, is a common word that must not get the Mac/Mc treatment.
func isNonGaelic(word string) bool {
	_, ok := nonGaelic[stem(bareWord(word))]
	return ok
}

// isMacName reports whether word is a listed Mac/Mc surname.
func isMacName(word string) bool {
	_, ok := macNames[bareWord(word)]
	return ok
}

func isPunct(r rune) bool {
	return strings.ContainsRune("!\"#$%&'‘()*+,-./:;?@[\\]_`{|}~", r)
}

// endsWord reports whether a small word matched at the end of match is
// complete given the text that follows it. A word ending in a period
// always is: either the period ends it or the letter before it does.
func endsWord(match, rest string) bool {
	if strings.HasSuffix(match, ".") {
		return true
	}
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !(unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r) || r == '_')
}
