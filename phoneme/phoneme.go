package phoneme

// Boundary marks a sample that starts from rest ("- g", "- a").
const Boundary = "-"

// CodaClass is one of the seven neutralized release classes of a Korean coda.
type CodaClass string

const (
	CodaK  CodaClass = "K"
	CodaN  CodaClass = "N"
	CodaT  CodaClass = "T"
	CodaL  CodaClass = "L"
	CodaM  CodaClass = "M"
	CodaP  CodaClass = "P"
	CodaNG CodaClass = "NG"
)

// AllCodaClasses returns the complete set of coda classes.
func AllCodaClasses() []CodaClass {
	return []CodaClass{CodaK, CodaN, CodaT, CodaL, CodaM, CodaP, CodaNG}
}

// Vowel is the symbolic form of a nucleus jamo. Only the initial and plain
// forms are kept; the release form ("wa -") is never emitted, so it is not
// stored.
type Vowel struct {
	Jamo      rune
	Letter    string // plain label, e.g. "a", "wa"
	Initial   string // boundary-marked label, e.g. "- a"
	Diphthong bool
}

// Fallback is a two-phone glide substitution for a diphthong missing from
// the voicebank.
type Fallback struct {
	First      string
	Second     string
	FirstTicks int // length of First before Second starts
}

// Phone is a label before timing is assigned.
type Phone struct {
	Label string
	Hold  int  // ticks until the next phone; 0 = allocator default
	Coda  bool // coda release, subject to the coda timing policy
}

// Token is a phoneme label placed at a tick offset from the note start.
type Token struct {
	Label  string `cbor:"1,keyasint"`
	Offset int    `cbor:"2,keyasint"`
}

// Marked prefixes label with the boundary marker.
func Marked(label string) string {
	return Boundary + " " + label
}

// VC returns the vowel+coda template label, e.g. VC("a", CodaN) == "a N".
func VC(vowel string, c CodaClass) string {
	return vowel + " " + string(c)
}

// Labels extracts the label strings of a token sequence.
func Labels(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Label
	}
	return out
}
