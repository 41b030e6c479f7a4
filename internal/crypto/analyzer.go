package crypto

import (
	"fmt"
	"math"
	"strings"

	"github.com/nbutton23/zxcvbn-go"
)

// Strength is a qualitative password strength label, ordered weakest first.
type Strength int

const (
	VeryWeak Strength = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

var strengthNames = [...]string{"Very Weak", "Weak", "Moderate", "Strong", "Very Strong"}

func (s Strength) String() string {
	if s < VeryWeak || s > VeryStrong {
		return fmt.Sprintf("Strength(%d)", int(s))
	}
	return strengthNames[s]
}

// MarshalText encodes the strength as its label.
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a strength label.
func (s *Strength) UnmarshalText(text []byte) error {
	for i, name := range strengthNames {
		if string(text) == name {
			*s = Strength(i)
			return nil
		}
	}
	return fmt.Errorf("unknown strength %q", text)
}

const (
	MaxScore = 8

	entropyThreshold = 60
	uniqueRatio      = 0.8

	// maxGuessCheckLen bounds the input handed to zxcvbn, whose cost grows
	// quickly with password length.
	maxGuessCheckLen = 50
)

// StrengthReport summarises the composition and estimated entropy of a password.
type StrengthReport struct {
	Length       int      `json:"length"`
	HasLowercase bool     `json:"has_lowercase"`
	HasUppercase bool     `json:"has_uppercase"`
	HasDigits    bool     `json:"has_digits"`
	HasSpecial   bool     `json:"has_special"`
	HasAmbiguous bool     `json:"has_ambiguous"`
	UniqueChars  int      `json:"unique_chars"`
	PoolSize     int      `json:"pool_size"`
	Entropy      float64  `json:"entropy"`
	Score        int      `json:"score"`
	Strength     Strength `json:"strength"`

	// GuessScore (0-4) and CrackTime come from zxcvbn's pattern matching.
	// They are informational and do not affect Score or Strength.
	GuessScore int    `json:"guess_score"`
	CrackTime  string `json:"crack_time,omitempty"`
}

// Analyze scores a password by the character classes it actually contains.
// The entropy is an approximation: it assumes every character was drawn
// uniformly from the reference alphabets of the classes present.
func Analyze(password string) StrengthReport {
	runes := []rune(password)
	report := StrengthReport{Length: len(runes)}

	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		seen[r] = struct{}{}
		switch {
		case Lowercase.Contains(r):
			report.HasLowercase = true
		case Uppercase.Contains(r):
			report.HasUppercase = true
		case Digit.Contains(r):
			report.HasDigits = true
		case Special.Contains(r):
			report.HasSpecial = true
		}
		if strings.ContainsRune(AmbiguousChars, r) {
			report.HasAmbiguous = true
		}
	}
	report.UniqueChars = len(seen)

	for _, present := range []struct {
		ok    bool
		class CharacterClass
	}{
		{report.HasLowercase, Lowercase},
		{report.HasUppercase, Uppercase},
		{report.HasDigits, Digit},
		{report.HasSpecial, Special},
	} {
		if present.ok {
			report.PoolSize += len(present.class.Alphabet())
		}
	}

	if report.PoolSize > 0 {
		report.Entropy = float64(report.Length) * math.Log2(float64(report.PoolSize))
	}

	report.Score = score(report)
	report.Strength = strengthForScore(report.Score)

	if report.Length > 0 {
		check := runes
		if len(check) > maxGuessCheckLen {
			check = check[:maxGuessCheckLen]
		}
		match := zxcvbn.PasswordStrength(string(check), nil)
		report.GuessScore = match.Score
		report.CrackTime = match.CrackTimeDisplay
	}

	return report
}

func score(r StrengthReport) int {
	checks := []bool{
		r.Length >= 8,
		r.Length >= 12,
		r.HasLowercase,
		r.HasUppercase,
		r.HasDigits,
		r.HasSpecial,
		r.Length > 0 && float64(r.UniqueChars) >= uniqueRatio*float64(r.Length),
		r.Entropy >= entropyThreshold,
	}

	n := 0
	for _, ok := range checks {
		if ok {
			n++
		}
	}
	return n
}

func strengthForScore(score int) Strength {
	switch {
	case score <= 2:
		return VeryWeak
	case score <= 4:
		return Weak
	case score <= 6:
		return Moderate
	case score <= 7:
		return Strong
	default:
		return VeryStrong
	}
}
