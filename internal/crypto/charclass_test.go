package crypto

import (
	"strings"
	"testing"
)

func TestEffectiveAlphabet(t *testing.T) {
	tests := []struct {
		class CharacterClass
		want  string
	}{
		{Lowercase, "abcdefghjkmnpqrstuvwxyz"},
		{Uppercase, "ABCDEFGHIJKMNPQRSTUVWXYZ"},
		{Digit, "23456789"},
		{Special, specialChars},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			if got := tt.class.EffectiveAlphabet(true); got != tt.want {
				t.Errorf("EffectiveAlphabet(true) = %q, want %q", got, tt.want)
			}
			if got := tt.class.EffectiveAlphabet(false); got != tt.class.Alphabet() {
				t.Errorf("EffectiveAlphabet(false) = %q, want %q", got, tt.class.Alphabet())
			}
		})
	}
}

func TestReferenceAlphabetSizes(t *testing.T) {
	want := map[CharacterClass]int{Lowercase: 26, Uppercase: 26, Digit: 10, Special: 26}
	for c, n := range want {
		if got := len(c.Alphabet()); got != n {
			t.Errorf("len(%s.Alphabet()) = %d, want %d", c, got, n)
		}
	}
}

func TestClassesAreDisjoint(t *testing.T) {
	for _, a := range Classes() {
		for _, b := range Classes() {
			if a == b {
				continue
			}
			if strings.ContainsAny(a.Alphabet(), b.Alphabet()) {
				t.Errorf("%s and %s alphabets overlap", a, b)
			}
		}
	}
}

func TestClassString(t *testing.T) {
	if got := CharacterClass(9).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
	if CharacterClass(9).Alphabet() != "" {
		t.Error("Alphabet() of unknown class should be empty")
	}
}
