package syllable

import (
	"github.com/ieee0824/hangul-cv/hangul"
	"github.com/ieee0824/hangul-cv/phoneme"
)

// Phonemes is the untimed output for one syllable.
type Phonemes struct {
	Phones     []phoneme.Phone
	Unverified []string // labels emitted without a voicebank sample
	Fallback   bool
}

// Phonemizer converts decomposed syllables. The zero value resolves every
// diphthong and coda as if the voicebank were empty.
type Phonemizer struct {
	Oracle Oracle
}

// New creates a Phonemizer backed by o.
func New(o Oracle) *Phonemizer {
	return &Phonemizer{Oracle: o}
}

// Phonemize emits onset, nucleus and coda for s, in that order.
// index is the position of s within the lyric; only index 0 with a silent
// onset gets the boundary-marked vowel.
func (p *Phonemizer) Phonemize(s hangul.Syllable, index int) Phonemes {
	var out Phonemes

	onset, _ := phoneme.Onset(s.Onset)
	if onset != "" {
		out.Phones = append(out.Phones, phoneme.Phone{Label: onset})
	}

	v, ok := phoneme.Nucleus(s.Nucleus)
	if !ok {
		return out
	}
	n := ResolveNucleus(v, index == 0 && onset == "", p.Oracle)
	out.Phones = append(out.Phones, n.Phones...)
	out.Fallback = n.Fallback
	if n.Unverified {
		out.Unverified = append(out.Unverified, n.Phones[0].Label)
	}

	if s.HasCoda() {
		if label, ok := ResolveCoda(s.Coda, v.Letter, p.Oracle); ok {
			out.Phones = append(out.Phones, phoneme.Phone{Label: label, Coda: true})
		}
	}
	return out
}
