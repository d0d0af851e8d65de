// Package lyric classifies note lyrics and splits them into units.
package lyric

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ieee0824/hangul-cv/hangul"
)

// Kind is the classification of a lyric.
type Kind int

const (
	Hangul       Kind = iota // decomposed syllable by syllable
	Hint                     // "[g a]": labels written by hand
	Continuation             // "+", "+1": holds the previous vowel
	Latin                    // ASCII words used as labels
)

func (k Kind) String() string {
	switch k {
	case Hangul:
		return "hangul"
	case Hint:
		return "hint"
	case Continuation:
		return "continuation"
	case Latin:
		return "latin"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Classify reports how text should be phonemized. Checks run in priority
// order: hint, continuation, Latin, Hangul.
func Classify(text string) Kind {
	switch {
	case len(text) >= 2 && strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"):
		return Hint
	case strings.HasPrefix(text, "+"):
		return Continuation
	case isLatin(text):
		return Latin
	}
	return Hangul
}

// isLatin reports whether text holds only ASCII letters, spaces and hyphens.
// The empty lyric counts as Latin and yields no labels.
func isLatin(text string) bool {
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == ' ', r == '-':
		default:
			return false
		}
	}
	return true
}

// HintLabels returns the whitespace-separated labels inside "[...]".
func HintLabels(text string) []string {
	if Classify(text) != Hint {
		return nil
	}
	return strings.Fields(text[1 : len(text)-1])
}

// LatinLabels returns the whitespace-separated words of a Latin lyric.
func LatinLabels(text string) []string {
	return strings.Fields(text)
}

// LiteralPolicy decides what happens to characters in a Hangul lyric that
// are not syllable blocks.
type LiteralPolicy int

const (
	// LiteralKeep emits the character itself as a label.
	LiteralKeep LiteralPolicy = iota
	// LiteralDrop skips the character.
	LiteralDrop
)

func (p LiteralPolicy) String() string {
	switch p {
	case LiteralKeep:
		return "keep"
	case LiteralDrop:
		return "drop"
	}
	return fmt.Sprintf("LiteralPolicy(%d)", int(p))
}

// ParseLiteralPolicy parses "keep" or "drop". The empty string is keep.
func ParseLiteralPolicy(s string) (LiteralPolicy, error) {
	switch s {
	case "", "keep":
		return LiteralKeep, nil
	case "drop":
		return LiteralDrop, nil
	}
	return LiteralKeep, fmt.Errorf("unknown literal policy %q", s)
}

// Unit is one element of a Hangul lyric: a syllable or a literal character.
type Unit struct {
	Syllable hangul.Syllable
	Literal  rune // non-zero for a literal character
}

// IsLiteral reports whether u is a literal character.
func (u Unit) IsLiteral() bool { return u.Literal != 0 }

// Units splits a Hangul lyric. Whitespace is always skipped; other
// characters outside the syllable block range follow policy.
func Units(text string, policy LiteralPolicy) []Unit {
	var units []Unit
	for _, r := range text {
		switch {
		case hangul.IsSyllable(r):
			units = append(units, Unit{Syllable: hangul.Decompose(r)})
		case unicode.IsSpace(r):
		case policy == LiteralKeep:
			units = append(units, Unit{Literal: r})
		}
	}
	return units
}
