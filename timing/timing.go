// Package timing places phonemes inside a note.
package timing

import (
	"fmt"

	"github.com/ieee0824/hangul-cv/phoneme"
)

const (
	DefaultConsonantTicks = 60
	DefaultCodaTicks      = 60
)

// CodaPolicy decides where a note-final coda is placed.
type CodaPolicy int

const (
	// CodaFixed advances to the coda by the usual consonant length.
	CodaFixed CodaPolicy = iota
	// CodaNearEnd places the coda CodaTicks before the end of the note.
	CodaNearEnd
)

func (p CodaPolicy) String() string {
	switch p {
	case CodaFixed:
		return "fixed"
	case CodaNearEnd:
		return "near-end"
	}
	return fmt.Sprintf("CodaPolicy(%d)", int(p))
}

// ParseCodaPolicy parses "fixed" or "near-end". The empty string is fixed.
func ParseCodaPolicy(s string) (CodaPolicy, error) {
	switch s {
	case "", "fixed":
		return CodaFixed, nil
	case "near-end":
		return CodaNearEnd, nil
	}
	return CodaFixed, fmt.Errorf("unknown coda policy %q", s)
}

// Config holds timing parameters in ticks.
type Config struct {
	ConsonantTicks int        // default length of every phone but the last
	CodaTicks      int        // coda length under CodaNearEnd
	Coda           CodaPolicy
}

// DefaultConfig returns the standard timing parameters.
func DefaultConfig() Config {
	return Config{
		ConsonantTicks: DefaultConsonantTicks,
		CodaTicks:      DefaultCodaTicks,
		Coda:           CodaFixed,
	}
}

// Allocate assigns offsets to phones within a note of duration ticks.
// Each phone but the last lasts its Hold, or ConsonantTicks when Hold is 0;
// the last phone is left for the host to stretch to the end of the note.
// If the lead-in reaches the end of the note, offsets are scaled so the
// last phone starts at half the note. The result is non-decreasing and the
// last offset stays below duration unless duration is 0.
func Allocate(phones []phoneme.Phone, duration int, cfg Config) []phoneme.Token {
	if len(phones) == 0 {
		return nil
	}
	step := cfg.ConsonantTicks
	if step <= 0 {
		step = DefaultConsonantTicks
	}

	tokens := make([]phoneme.Token, len(phones))
	pos := 0
	for i, ph := range phones {
		tokens[i] = phoneme.Token{Label: ph.Label, Offset: pos}
		if ph.Hold > 0 {
			pos += ph.Hold
		} else {
			pos += step
		}
	}

	last := len(tokens) - 1
	if cfg.Coda == CodaNearEnd && last > 0 && phones[last].Coda {
		codaTicks := cfg.CodaTicks
		if codaTicks <= 0 {
			codaTicks = DefaultCodaTicks
		}
		at := duration - codaTicks
		if prev := tokens[last-1].Offset; at < prev {
			at = prev
		}
		tokens[last].Offset = at
	}

	if duration <= 0 {
		for i := range tokens {
			tokens[i].Offset = 0
		}
		return tokens
	}
	if end := tokens[last].Offset; end > 0 && end >= duration {
		limit := duration / 2
		for i := range tokens {
			tokens[i].Offset = tokens[i].Offset * limit / end
		}
	}
	return tokens
}

// Spaced places labels at fixed intervals, ignoring the note length.
func Spaced(labels []string, spacing int) []phoneme.Token {
	if len(labels) == 0 {
		return nil
	}
	tokens := make([]phoneme.Token, len(labels))
	for i, l := range labels {
		tokens[i] = phoneme.Token{Label: l, Offset: i * spacing}
	}
	return tokens
}
