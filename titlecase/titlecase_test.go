package titlecase

import (
	"strings"
	"testing"
)

func TestTitlecase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "only whitespace", in: "  \t ", want: ""},
		{name: "small words inside", in: "for whom the bell tolls", want: "For Whom the Bell Tolls"},
		{name: "subphrase after colon", in: "q&a with steve jobs: an unauthorized biography", want: "Q&A with Steve Jobs: An Unauthorized Biography"},
		{name: "subphrase after period", in: "first things first. the rest later", want: "First Things First. The Rest Later"},
		{name: "ampersand", in: "at&t", want: "AT&T"},
		{name: "all caps lowered", in: "THE LORD OF THE RINGS", want: "The Lord of the Rings"},
		{name: "capitalized small words", in: "Gone With The Wind", want: "Gone with the Wind"},
		{name: "initials", in: "born in the U.S.A.", want: "Born in the U.S.A."},
		{name: "single initial", in: "john N. smith", want: "John N. Smith"},
		{name: "apostrophe prefix", in: "d'artagnan", want: "D'Artagnan"},
		{name: "apostrophe prefix all caps", in: "D'ARTAGNAN", want: "D'Artagnan"},
		{name: "apostrophe names", in: "o'neil and mcdonald's", want: "O'Neil and McDonald's"},
		{name: "mac prefix", in: "macintosh", want: "MacIntosh"},
		{name: "mac prefix all caps", in: "MACDONALD", want: "MacDonald"},
		{name: "mac lookalike", in: "machine", want: "Machine"},
		{name: "mac lookalike with punctuation", in: "the machine, revisited", want: "The Machine, Revisited"},
		{name: "slash", in: "this/that", want: "This/That"},
		{name: "slash in phrase", in: "this and/or that", want: "This And/Or That"},
		{name: "double slash", in: "see foo//bar", want: "See Foo//bar"},
		{name: "hyphen", in: "well-known", want: "Well-Known"},
		{name: "hyphenated small words", in: "step-by-step guide", want: "Step-By-Step Guide"},
		{name: "inner capital", in: "the new iPhone", want: "The New iPhone"},
		{name: "inline period", in: "a variety of fruits, e.g. apples", want: "A Variety of Fruits, e.g. Apples"},
		{name: "domain", in: "visit example.com today", want: "Visit example.com Today"},
		{name: "versus", in: "kramer vs. kramer", want: "Kramer vs. Kramer"},
		{name: "leading quote", in: `"the best" of them`, want: `"The Best" of Them`},
		{name: "digits", in: "2nd edition", want: "2nd Edition"},
		{name: "small word last", in: "what it is for", want: "What It Is For"},
		{name: "non latin", in: "日本語 text", want: "日本語 Text"},
		{name: "accented", in: "café society", want: "Café Society"},
		{name: "separators normalized", in: "  hello   \t world ", want: "Hello World"},
		{name: "multi line", in: "the cat\nin the hat", want: "The Cat\nIn the Hat"},
		{name: "crlf", in: "one\r\ntwo", want: "One\nTwo"},
		{name: "carriage return", in: "one\rtwo", want: "One\nTwo"},
		{name: "blank line kept", in: "one\n\ntwo", want: "One\n\nTwo"},
		{name: "subphrase after question mark", in: "why not? the answer", want: "Why Not? The Answer"},
		{name: "subphrase after exclamation", in: "stop! in the name of love", want: "Stop! In the Name of Love"},
		{name: "subphrase longer small word", in: "part one: del rey", want: "Part One: Del Rey"},
		{name: "subphrase versus", in: "the fight: vs the world", want: "The Fight: Vs the World"},
		{name: "plus join", in: "c+c", want: "C+C"},
		{name: "plus join in phrase", in: "r+d budget", want: "R+D Budget"},
		{name: "inner capital after punctuation", in: "the (iPhone) case", want: "The (iPhone) Case"},
		{name: "accented small tail", in: "ave maría", want: "Ave María"},
		{name: "decomposed accent small tail", in: "ave mari\u0301a", want: "Ave Mari\u0301a"},
		{name: "tilde small tail", in: "viva españa", want: "Viva España"},
		{name: "small first accented tail", in: "la niña", want: "La Niña"},
		{name: "accented interior", in: "el niño y la niña", want: "El Niño y la Niña"},
		{name: "accented first word", in: "año nuevo", want: "Año Nuevo"},
		{name: "small last after accented punctuation", in: "crème brûlée: la", want: "Crème Brûlée: La"},
		{name: "small last after comma", in: "mañana, a", want: "Mañana, A"},
		{name: "mac restricted remainder", in: "macleod", want: "MacLeod"},
		{name: "mc restricted remainder", in: "mcdonald", want: "McDonald"},
		{name: "listed mc name", in: "mcgregor", want: "McGregor"},
		{name: "place name", in: "macedonia", want: "Macedonia"},
		{name: "person name", in: "machiavelli", want: "Machiavelli"},
		{name: "two words", in: "machu picchu", want: "Machu Picchu"},
		{name: "animal", in: "the macaque", want: "The Macaque"},
		{name: "trade", in: "a machinist", want: "A Machinist"},
		{name: "long word", in: "macroeconomics", want: "Macroeconomics"},
		{name: "mac lookalike inflected", in: "macadams", want: "Macadams"},
		{name: "mac lookalike uninflected", in: "macadam", want: "Macadam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Titlecase(tt.in); got != tt.want {
				t.Errorf("Titlecase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTitlecase_FixedPoint(t *testing.T) {
	phrases := []string{
		"For Whom the Bell Tolls",
		"The Lord of the Rings",
		"Gone with the Wind",
		"A Tale of Two Cities",
		"Of Mice and Men",
		"The War: A History",
	}
	for _, p := range phrases {
		if got := Titlecase(p); got != p {
			t.Errorf("Titlecase(%q) = %q, want unchanged", p, got)
		}
		if got := Titlecase(Titlecase(p)); got != p {
			t.Errorf("Titlecase twice (%q) = %q, want unchanged", p, got)
		}
	}
}

var plainSmallWords = []string{
	"a", "of", "an", "or", "and", "the", "for", "to", "from", "in",
	"al", "da", "das", "de", "del", "e", "el", "en", "la", "las",
	"los", "para", "por", "um", "uma", "un", "una", "y", "v", "via",
	"vs", "with",
}

func TestTitlecase_SmallWordPositions(t *testing.T) {
	for _, w := range plainSmallWords {
		capitalized := strings.ToUpper(w[:1]) + w[1:]

		for _, in := range []string{w, strings.ToUpper(w), capitalized} {
			words := Words(Titlecase("start " + in + " finish"))
			assertWord(t, words, 1, w)

			words = Words(Titlecase(in + " start"))
			assertWord(t, words, 0, capitalized)

			words = Words(Titlecase("start " + in))
			assertWord(t, words, 1, capitalized)

			words = Words(Titlecase("start " + in + "!"))
			assertWord(t, words, 1, capitalized+"!")

			words = Words(Titlecase("start; " + in + " finish"))
			assertWord(t, words, 1, capitalized)
		}
	}
}

func TestTitlecase_Concurrent(t *testing.T) {
	const in = "q&a with steve jobs: an unauthorized biography"
	const want = "Q&A with Steve Jobs: An Unauthorized Biography"

	done := make(chan string)
	for i := 0; i < 16; i++ {
		go func() { done <- Titlecase(in) }()
	}
	for i := 0; i < 16; i++ {
		if got := <-done; got != want {
			t.Errorf("Titlecase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUpperFirst(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"word":   "Word",
		"(word":  "(Word",
		"9lives": "9lives",
		"...":    "...",
	}
	for in, want := range tests {
		if got := upperFirst(in); got != want {
			t.Errorf("upperFirst(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEndsWord(t *testing.T) {
	tests := []struct {
		match string
		rest  string
		want  bool
	}{
		{match: "a", rest: "", want: true},
		{match: "a", rest: " b", want: true},
		{match: "a", rest: ",", want: true},
		{match: "a", rest: "ñ", want: false},
		{match: "a", rest: "\u0301", want: false},
		{match: "de", rest: "l", want: false},
		{match: "e", rest: "9", want: false},
		{match: "v.", rest: "x", want: true},
	}
	for _, tt := range tests {
		if got := endsWord(tt.match, tt.rest); got != tt.want {
			t.Errorf("endsWord(%q, %q) = %v, want %v", tt.match, tt.rest, got, tt.want)
		}
	}
}

func TestIsNonGaelic(t *testing.T) {
	tests := map[string]bool{
		"machine":    true,
		"Machines":   true,
		"machined,":  true,
		"mackerels":  true,
		"macaroons.": true,
		"macadams":   true,
		"macdonald":  false,
		"macintosh":  false,
	}
	for in, want := range tests {
		if got := isNonGaelic(in); got != want {
			t.Errorf("isNonGaelic(%q) = %v, want %v", in, got, want)
		}
	}
}

func assertWord(t *testing.T, words []string, i int, want string) {
	t.Helper()
	if len(words) <= i {
		t.Fatalf("words = %q, want at least %d", words, i+1)
	}
	if words[i] != want {
		t.Errorf("words[%d] = %q, want %q (all: %q)", i, words[i], want, words)
	}
}
