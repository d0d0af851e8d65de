package timing

import (
	"testing"

	"github.com/ieee0824/hangul-cv/phoneme"
)

func phones(labels ...string) []phoneme.Phone {
	ps := make([]phoneme.Phone, len(labels))
	for i, l := range labels {
		ps[i] = phoneme.Phone{Label: l}
	}
	return ps
}

func offsets(tokens []phoneme.Token) []int {
	out := make([]int, len(tokens))
	for i, t := range tokens {
		out[i] = t.Offset
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAllocate(t *testing.T) {
	coda := phoneme.Phone{Label: "N", Coda: true}
	glide := phoneme.Phone{Label: "- o", Hold: 20}

	tests := []struct {
		name     string
		phones   []phoneme.Phone
		duration int
		cfg      Config
		want     []int
	}{
		{"single", phones("- a"), 480, DefaultConfig(), []int{0}},
		{"fixed steps", phones("- g", "a", "a N"), 480, DefaultConfig(), []int{0, 60, 120}},
		{"hold", []phoneme.Phone{glide, {Label: "a"}}, 480, DefaultConfig(), []int{0, 20}},
		{"custom step", phones("- g", "a"), 480, Config{ConsonantTicks: 30}, []int{0, 30}},
		{"zero step uses default", phones("- g", "a"), 480, Config{}, []int{0, 60}},
		{"near end coda", []phoneme.Phone{{Label: "- g"}, {Label: "a"}, coda}, 480,
			Config{ConsonantTicks: 60, CodaTicks: 60, Coda: CodaNearEnd}, []int{0, 60, 420}},
		{"near end coda short note", []phoneme.Phone{{Label: "- g"}, {Label: "a"}, coda}, 100,
			Config{ConsonantTicks: 60, CodaTicks: 60, Coda: CodaNearEnd}, []int{0, 60, 60}},
		{"near end ignores non-coda", phones("- g", "a"), 480,
			Config{ConsonantTicks: 60, Coda: CodaNearEnd}, []int{0, 60}},
		{"overflow scaled", phones("- g", "a", "N"), 100, DefaultConfig(), []int{0, 25, 50}},
		{"lead-in fills note", phones("- g", "a", "N"), 120, DefaultConfig(), []int{0, 30, 60}},
		{"zero duration", phones("- g", "a"), 0, DefaultConfig(), []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := offsets(Allocate(tt.phones, tt.duration, tt.cfg))
			if !equalInts(got, tt.want) {
				t.Errorf("Allocate() offsets = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllocateEmpty(t *testing.T) {
	if got := Allocate(nil, 480, DefaultConfig()); got != nil {
		t.Errorf("Allocate(nil) = %v, want nil", got)
	}
}

func TestAllocateMonotonic(t *testing.T) {
	cfgs := []Config{DefaultConfig(), {ConsonantTicks: 45, CodaTicks: 90, Coda: CodaNearEnd}}
	ps := []phoneme.Phone{
		{Label: "- g"}, {Label: "o", Hold: 20}, {Label: "a"}, {Label: "N", Coda: true},
		{Label: "- d"}, {Label: "a"}, {Label: "L", Coda: true},
	}
	for _, cfg := range cfgs {
		for n := 1; n <= len(ps); n++ {
			for _, d := range []int{1, 15, 60, 120, 240, 480, 1920} {
				tokens := Allocate(ps[:n], d, cfg)
				for i := 1; i < len(tokens); i++ {
					if tokens[i].Offset < tokens[i-1].Offset {
						t.Fatalf("n=%d d=%d: offsets %v decrease", n, d, offsets(tokens))
					}
				}
				if last := tokens[len(tokens)-1].Offset; last >= d {
					t.Fatalf("n=%d d=%d: last offset %d leaves no room in the note", n, d, last)
				}
			}
		}
	}
}

func TestSpaced(t *testing.T) {
	got := Spaced([]string{"g", "a"}, 120)
	if len(got) != 2 || got[0] != (phoneme.Token{Label: "g", Offset: 0}) || got[1] != (phoneme.Token{Label: "a", Offset: 120}) {
		t.Errorf("Spaced() = %v", got)
	}
	if Spaced(nil, 120) != nil {
		t.Error("Spaced(nil) should be nil")
	}
}

func TestParseCodaPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    CodaPolicy
		wantErr bool
	}{
		{"", CodaFixed, false},
		{"fixed", CodaFixed, false},
		{"near-end", CodaNearEnd, false},
		{"late", CodaFixed, true},
	}
	for _, tt := range tests {
		got, err := ParseCodaPolicy(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseCodaPolicy(%q) = %v, %v", tt.in, got, err)
		}
	}
	if CodaNearEnd.String() != "near-end" {
		t.Errorf("String() = %q", CodaNearEnd.String())
	}
}
