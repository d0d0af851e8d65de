// Package hangul splits precomposed Hangul syllable blocks into jamo.
package hangul

import "fmt"

const (
	Base = 0xAC00 // 가
	Last = 0xD7A3 // 힣

	OnsetCount   = 19
	NucleusCount = 21
	CodaCount    = 28 // including the empty coda
)

var (
	onsetOrder   = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	nucleusOrder = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	codaOrder    = []rune{'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}

	onsetIndex   = buildIndex(onsetOrder)
	nucleusIndex = buildIndex(nucleusOrder)
	codaIndex    = buildIndex(codaOrder)
)

// SilentOnset is the onset jamo that carries no sound.
const SilentOnset = 'ㅇ'

// Syllable is one decomposed syllable block. Coda is 0 when absent.
type Syllable struct {
	Onset   rune
	Nucleus rune
	Coda    rune
}

// HasCoda reports whether the syllable ends in a consonant.
func (s Syllable) HasCoda() bool { return s.Coda != 0 }

// Silent reports whether the onset is the silent ㅇ.
func (s Syllable) Silent() bool { return s.Onset == SilentOnset }

func (s Syllable) String() string {
	if s.Coda == 0 {
		return string([]rune{s.Onset, s.Nucleus})
	}
	return string([]rune{s.Onset, s.Nucleus, s.Coda})
}

// IsSyllable reports whether r is a precomposed syllable block.
func IsSyllable(r rune) bool {
	return r >= Base && r <= Last
}

// Indices returns the onset, nucleus and coda indices of r.
// coda is 0 when the syllable has no final consonant.
func Indices(r rune) (onset, nucleus, coda int) {
	offset := int(r - Base)
	onset = offset / (NucleusCount * CodaCount)
	nucleus = offset % (NucleusCount * CodaCount) / CodaCount
	coda = offset % CodaCount
	return onset, nucleus, coda
}

// Decompose splits a syllable block into its jamo.
// It panics if r is not a syllable block; check IsSyllable first.
func Decompose(r rune) Syllable {
	if !IsSyllable(r) {
		panic(fmt.Sprintf("hangul: %U is not a syllable block", r))
	}
	onset, nucleus, coda := Indices(r)
	s := Syllable{
		Onset:   onsetOrder[onset],
		Nucleus: nucleusOrder[nucleus],
	}
	if coda > 0 {
		s.Coda = codaOrder[coda-1]
	}
	return s
}

// Compose is the inverse of Decompose.
func Compose(s Syllable) (rune, bool) {
	oi, ok := onsetIndex[s.Onset]
	if !ok {
		return 0, false
	}
	ni, ok := nucleusIndex[s.Nucleus]
	if !ok {
		return 0, false
	}
	ci := 0
	if s.Coda != 0 {
		i, ok := codaIndex[s.Coda]
		if !ok {
			return 0, false
		}
		ci = i + 1
	}
	return Base + rune((oi*NucleusCount+ni)*CodaCount+ci), true
}

// OnsetJamo returns the onset jamo in Unicode index order.
func OnsetJamo() []rune { return append([]rune(nil), onsetOrder...) }

// NucleusJamo returns the nucleus jamo in Unicode index order.
func NucleusJamo() []rune { return append([]rune(nil), nucleusOrder...) }

// CodaJamo returns the 27 coda jamo in Unicode index order, without the
// empty slot.
func CodaJamo() []rune { return append([]rune(nil), codaOrder...) }

func buildIndex(list []rune) map[rune]int {
	idx := make(map[rune]int, len(list))
	for i, r := range list {
		idx[r] = i
	}
	return idx
}
