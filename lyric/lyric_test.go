package lyric

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"[g a]", Hint},
		{"[]", Hint},
		{"[사랑]", Hint},
		{"[", Hangul},
		{"+", Continuation},
		{"+1", Continuation},
		{"+~", Continuation},
		{"la", Latin},
		{"la la", Latin},
		{"- a", Latin},
		{"", Latin},
		{"사랑", Hangul},
		{"사 랑", Hangul},
		{"ㄱ", Hangul},
		{"la1", Hangul},
		{"사랑!", Hangul},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHintLabels(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"[g a]", "g|a"},
		{"[  - g   a N ]", "-|g|a|N"},
		{"[]", ""},
		{"g a", ""},
	}
	for _, tt := range tests {
		if got := strings.Join(HintLabels(tt.text), "|"); got != tt.want {
			t.Errorf("HintLabels(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestLatinLabels(t *testing.T) {
	if got := strings.Join(LatinLabels(" la  - li "), "|"); got != "la|-|li" {
		t.Errorf("LatinLabels = %q", got)
	}
}

func TestUnits(t *testing.T) {
	describe := func(units []Unit) string {
		var sb strings.Builder
		for _, u := range units {
			if u.IsLiteral() {
				sb.WriteString("<" + string(u.Literal) + ">")
			} else {
				sb.WriteString(u.Syllable.String())
			}
		}
		return sb.String()
	}

	tests := []struct {
		text   string
		policy LiteralPolicy
		want   string
	}{
		{"사랑", LiteralKeep, "ㅅㅏㄹㅏㅇ"},
		{"사 랑", LiteralKeep, "ㅅㅏㄹㅏㅇ"},
		{"사랑!", LiteralKeep, "ㅅㅏㄹㅏㅇ<!>"},
		{"사랑!", LiteralDrop, "ㅅㅏㄹㅏㅇ"},
		{"ㄱ가", LiteralKeep, "<ㄱ>ㄱㅏ"},
		{"ㄱ가", LiteralDrop, "ㄱㅏ"},
		{"", LiteralKeep, ""},
	}
	for _, tt := range tests {
		if got := describe(Units(tt.text, tt.policy)); got != tt.want {
			t.Errorf("Units(%q, %v) = %q, want %q", tt.text, tt.policy, got, tt.want)
		}
	}
}

func TestParseLiteralPolicy(t *testing.T) {
	for in, want := range map[string]LiteralPolicy{"": LiteralKeep, "keep": LiteralKeep, "drop": LiteralDrop} {
		got, err := ParseLiteralPolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseLiteralPolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLiteralPolicy("strip"); err == nil {
		t.Error("expected error for unknown policy")
	}
}
