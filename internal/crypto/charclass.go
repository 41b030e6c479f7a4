package crypto

import "strings"

// CharacterClass is one of the fixed character categories a password draws from.
type CharacterClass int

const (
	Lowercase CharacterClass = iota
	Uppercase
	Digit
	Special

	// NumClasses is the number of character classes.
	NumClasses = 4
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()-_+=[]{}|;:,.<>?"

	// AmbiguousChars are visually confusable and can be left out of the
	// lowercase, uppercase and digit classes.
	AmbiguousChars = "il1Lo0O"
)

var classes = [NumClasses]CharacterClass{Lowercase, Uppercase, Digit, Special}

// Classes returns every character class in generation order.
func Classes() []CharacterClass {
	return classes[:]
}

// String returns the lowercase name of the class.
func (c CharacterClass) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "digits"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// Alphabet returns the fixed reference alphabet of the class.
func (c CharacterClass) Alphabet() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Digit:
		return digitChars
	case Special:
		return specialChars
	default:
		return ""
	}
}

// Filterable reports whether ambiguous exclusion applies to the class.
func (c CharacterClass) Filterable() bool {
	return c != Special
}

// EffectiveAlphabet returns the reference alphabet, minus the ambiguous
// characters when excludeAmbiguous is set and the class is filterable.
func (c CharacterClass) EffectiveAlphabet(excludeAmbiguous bool) string {
	alphabet := c.Alphabet()
	if !excludeAmbiguous || !c.Filterable() {
		return alphabet
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(AmbiguousChars, r) {
			return -1
		}
		return r
	}, alphabet)
}

// Contains reports whether r belongs to the class's reference alphabet.
func (c CharacterClass) Contains(r rune) bool {
	return strings.ContainsRune(c.Alphabet(), r)
}
