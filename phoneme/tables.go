package phoneme

// onsetLabels maps onset jamo to boundary-marked labels.
// ㅇ is silent and produces nothing.
var onsetLabels = map[rune]string{
	'ㄱ': "- g", 'ㄲ': "- kk", 'ㄴ': "- n", 'ㄷ': "- d", 'ㄸ': "- tt",
	'ㄹ': "- r", 'ㅁ': "- m", 'ㅂ': "- b", 'ㅃ': "- pp", 'ㅅ': "- s",
	'ㅆ': "- ss", 'ㅇ': "", 'ㅈ': "- j", 'ㅉ': "- jj", 'ㅊ': "- ch",
	'ㅋ': "- k", 'ㅌ': "- t", 'ㅍ': "- p", 'ㅎ': "- h",
}

// nucleusLetters lists every nucleus jamo with its plain label.
// ㅐ merges into ㅔ, and ㅙ ㅚ ㅞ share one label.
var nucleusLetters = []struct {
	jamo      rune
	letter    string
	diphthong bool
}{
	// 단모음
	{'ㅏ', "a", false},
	{'ㅐ', "e", false},
	{'ㅓ', "eo", false},
	{'ㅔ', "e", false},
	{'ㅗ', "o", false},
	{'ㅜ', "u", false},
	{'ㅡ', "eu", false},
	{'ㅣ', "i", false},
	// 이중모음
	{'ㅑ', "ya", true},
	{'ㅒ', "yae", true},
	{'ㅕ', "yeo", true},
	{'ㅖ', "ye", true},
	{'ㅘ', "wa", true},
	{'ㅙ', "we", true},
	{'ㅚ', "we", true},
	{'ㅛ', "yo", true},
	{'ㅝ', "wo", true},
	{'ㅞ', "we", true},
	{'ㅟ', "wi", true},
	{'ㅠ', "yu", true},
	{'ㅢ', "ui", true},
}

// codaClasses neutralizes every coda jamo, clusters included.
var codaClasses = map[rune]CodaClass{
	'ㄱ': CodaK, 'ㄲ': CodaK, 'ㅋ': CodaK, 'ㄳ': CodaK, 'ㄺ': CodaK,
	'ㄴ': CodaN, 'ㄵ': CodaN, 'ㄶ': CodaN,
	'ㄷ': CodaT, 'ㅅ': CodaT, 'ㅆ': CodaT, 'ㅈ': CodaT, 'ㅊ': CodaT, 'ㅌ': CodaT, 'ㅎ': CodaT,
	'ㄹ': CodaL, 'ㄼ': CodaL, 'ㄽ': CodaL, 'ㄾ': CodaL, 'ㅀ': CodaL,
	'ㅁ': CodaM, 'ㄻ': CodaM,
	'ㅂ': CodaP, 'ㅍ': CodaP, 'ㄿ': CodaP, 'ㅄ': CodaP,
	'ㅇ': CodaNG,
}

// fallbacks holds glide substitutions for the diphthongs most often
// missing from a voicebank.
var fallbacks = map[rune]Fallback{
	'ㅖ': {"i", "e", 30},
	'ㅢ': {"eu", "i", 60},
	'ㅘ': {"o", "a", 20},
	'ㅟ': {"u", "i", 20},
	'ㅝ': {"u", "eo", 30},
}

// vowels indexes nucleusLetters. Built at init time.
var vowels map[rune]Vowel

func init() {
	vowels = make(map[rune]Vowel, len(nucleusLetters))
	for _, e := range nucleusLetters {
		vowels[e.jamo] = Vowel{
			Jamo:      e.jamo,
			Letter:    e.letter,
			Initial:   Marked(e.letter),
			Diphthong: e.diphthong,
		}
	}
}

// Onset returns the label for an onset jamo. The label is empty for the
// silent onset ㅇ. ok is false if r is not an onset jamo.
func Onset(r rune) (label string, ok bool) {
	label, ok = onsetLabels[r]
	return label, ok
}

// Nucleus returns the vowel form of a nucleus jamo.
func Nucleus(r rune) (Vowel, bool) {
	v, ok := vowels[r]
	return v, ok
}

// Coda returns the neutralized class of a coda jamo.
func Coda(r rune) (CodaClass, bool) {
	c, ok := codaClasses[r]
	return c, ok
}

// FallbackFor returns the glide substitution for a diphthong, if it has one.
func FallbackFor(r rune) (Fallback, bool) {
	f, ok := fallbacks[r]
	return f, ok
}

// FallbackJamo returns the diphthongs that have a glide substitution.
func FallbackJamo() []rune {
	return []rune{'ㅖ', 'ㅢ', 'ㅘ', 'ㅟ', 'ㅝ'}
}
