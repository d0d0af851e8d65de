// Package syllable turns one decomposed Hangul syllable into phoneme labels,
// consulting the voicebank for diphthong and vowel+coda samples.
package syllable

import "github.com/ieee0824/hangul-cv/phoneme"

// Oracle reports whether the active voicebank has a sample for a label.
// Implementations must be free of side effects.
type Oracle interface {
	Available(label string) bool
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(label string) bool

// Available calls f(label).
func (f OracleFunc) Available(label string) bool { return f(label) }

// None is an Oracle with no samples at all.
var None Oracle = OracleFunc(func(string) bool { return false })

func available(o Oracle, label string) bool {
	if o == nil {
		return false
	}
	return o.Available(label)
}

// Nucleus is the resolved vowel of one syllable.
type Nucleus struct {
	Phones []phoneme.Phone

	// Fallback is set when a diphthong was replaced by its glide pair.
	Fallback bool

	// Unverified is set when a diphthong without a glide pair was emitted
	// even though the voicebank has no sample for it.
	Unverified bool
}

// ResolveNucleus picks the label(s) for a vowel. initial selects the
// boundary-marked form used when the vowel opens the lyric.
func ResolveNucleus(v phoneme.Vowel, initial bool, o Oracle) Nucleus {
	native := v.Letter
	if initial {
		native = v.Initial
	}
	if !v.Diphthong {
		return Nucleus{Phones: []phoneme.Phone{{Label: native}}}
	}

	if available(o, native) {
		return Nucleus{Phones: []phoneme.Phone{{Label: native}}}
	}

	f, ok := phoneme.FallbackFor(v.Jamo)
	if !ok {
		return Nucleus{
			Phones:     []phoneme.Phone{{Label: native}},
			Unverified: true,
		}
	}

	first := f.First
	if initial {
		first = phoneme.Marked(first)
	}
	return Nucleus{
		Phones: []phoneme.Phone{
			{Label: first, Hold: f.FirstTicks},
			{Label: f.Second},
		},
		Fallback: true,
	}
}

// ResolveCoda returns the vowel+coda label when the voicebank has it and
// the bare neutralized class otherwise. vowel is the plain label of the
// same syllable's nucleus. ok is false if coda is not a coda jamo.
func ResolveCoda(coda rune, vowel string, o Oracle) (label string, ok bool) {
	class, ok := phoneme.Coda(coda)
	if !ok {
		return "", false
	}
	if vowel != "" {
		if vc := phoneme.VC(vowel, class); available(o, vc) {
			return vc, true
		}
	}
	return string(class), true
}
