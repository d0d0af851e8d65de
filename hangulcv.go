// Package hangulcv converts Korean note lyrics into C+V voicebank phonemes.
package hangulcv

import (
	"github.com/tliron/commonlog"

	"github.com/ieee0824/hangul-cv/lyric"
	"github.com/ieee0824/hangul-cv/phoneme"
	"github.com/ieee0824/hangul-cv/syllable"
	"github.com/ieee0824/hangul-cv/timing"
)

// DefaultHintSpacing is the distance between labels of a "[...]" lyric.
const DefaultHintSpacing = 120

// Note is a host note: its lyric and its length in ticks.
type Note struct {
	Lyric    string
	Duration int
}

// Result holds the phonemes of one note group.
type Result struct {
	Tokens     []phoneme.Token `cbor:"1,keyasint"`
	Unverified []string        `cbor:"2,keyasint,omitempty"` // labels the voicebank lacks
}

// Labels returns the token labels in order.
func (r Result) Labels() []string {
	return phoneme.Labels(r.Tokens)
}

// Phonemizer is the top-level lyric converter. The zero value is usable and
// behaves like New without options. It holds no mutable state
// after construction and may be shared between goroutines as long as its
// Oracle is safe for concurrent reads.
type Phonemizer struct {
	Oracle      syllable.Oracle
	Timing      timing.Config
	Literals    lyric.LiteralPolicy
	HintSpacing int

	log commonlog.Logger
}

// Option configures a Phonemizer.
type Option func(*Phonemizer)

// WithOracle sets the voicebank availability oracle.
func WithOracle(o syllable.Oracle) Option {
	return func(p *Phonemizer) {
		p.Oracle = o
	}
}

// WithTiming sets custom timing parameters.
func WithTiming(cfg timing.Config) Option {
	return func(p *Phonemizer) {
		p.Timing = cfg
	}
}

// WithLiteralPolicy sets how non-syllable characters in a Hangul lyric are
// treated.
func WithLiteralPolicy(policy lyric.LiteralPolicy) Option {
	return func(p *Phonemizer) {
		p.Literals = policy
	}
}

// WithHintSpacing sets the spacing of "[...]" labels in ticks.
func WithHintSpacing(ticks int) Option {
	return func(p *Phonemizer) {
		p.HintSpacing = ticks
	}
}

// WithLogger replaces the default "hangulcv" logger.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Phonemizer) {
		p.log = log
	}
}

// New creates a Phonemizer. Without WithOracle every diphthong falls back to
// its glide pair and every coda is neutralized.
func New(opts ...Option) *Phonemizer {
	p := &Phonemizer{
		Timing:      timing.DefaultConfig(),
		Literals:    lyric.LiteralKeep,
		HintSpacing: DefaultHintSpacing,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.logger()
	return p
}

// logger returns the configured logger, or the package logger for a
// Phonemizer built without New.
func (p *Phonemizer) logger() commonlog.Logger {
	if p.log == nil {
		return commonlog.GetLogger("hangulcv")
	}
	return p.log
}

// Phonemize converts a note group. The first note carries the lyric; the
// rest extend it, so the group length is the sum of all durations.
func (p *Phonemizer) Phonemize(notes ...Note) Result {
	if len(notes) == 0 {
		return Result{}
	}
	total := 0
	for _, n := range notes {
		total += n.Duration
	}
	return p.PhonemizeLyric(notes[0].Lyric, total)
}

// PhonemizeLyric converts a single lyric sung over duration ticks.
func (p *Phonemizer) PhonemizeLyric(text string, duration int) Result {
	switch lyric.Classify(text) {
	case lyric.Hint:
		return Result{Tokens: timing.Spaced(lyric.HintLabels(text), p.HintSpacing)}
	case lyric.Continuation:
		return Result{}
	case lyric.Latin:
		words := lyric.LatinLabels(text)
		phones := make([]phoneme.Phone, len(words))
		for i, w := range words {
			phones[i] = phoneme.Phone{Label: w}
		}
		return Result{Tokens: timing.Allocate(phones, duration, p.Timing)}
	}

	var (
		phones     []phoneme.Phone
		unverified []string
	)
	log := p.logger()
	sp := syllable.New(p.Oracle)
	for i, u := range lyric.Units(text, p.Literals) {
		if u.IsLiteral() {
			phones = append(phones, phoneme.Phone{Label: string(u.Literal)})
			continue
		}
		out := sp.Phonemize(u.Syllable, i)
		if out.Fallback {
			log.Debugf("%s: no diphthong sample, using glide pair in %q", u.Syllable, text)
		}
		for _, label := range out.Unverified {
			log.Warningf("voicebank has no sample for %q in %q", label, text)
		}
		phones = append(phones, out.Phones...)
		unverified = append(unverified, out.Unverified...)
	}
	return Result{
		Tokens:     timing.Allocate(phones, duration, p.Timing),
		Unverified: unverified,
	}
}
