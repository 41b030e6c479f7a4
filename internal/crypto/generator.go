package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

const (
	MinLength     = 4
	DefaultLength = 12

	// MaxLength and MaxCount bound a single request so that allocation
	// sizes never come straight from caller input.
	MaxLength = 4096
	MaxCount  = 10000
)

// ErrConfiguration is wrapped by every error caused by an unsatisfiable
// generator configuration.
var ErrConfiguration = errors.New("invalid generator configuration")

var (
	ErrLengthTooShort       = fmt.Errorf("%w: password length must be at least %d characters", ErrConfiguration, MinLength)
	ErrLengthTooLong        = fmt.Errorf("%w: password length must be at most %d characters", ErrConfiguration, MaxLength)
	ErrEmptyPool            = fmt.Errorf("%w: no character types selected", ErrConfiguration)
	ErrMinimumsExceedLength = fmt.Errorf("%w: minimum character requirements exceed password length", ErrConfiguration)
	ErrNegativeMinimum      = fmt.Errorf("%w: minimum character count cannot be negative", ErrConfiguration)
	ErrInvalidCount         = fmt.Errorf("%w: password count must be at least 1", ErrConfiguration)
	ErrCountTooLarge        = fmt.Errorf("%w: password count must be at most %d", ErrConfiguration, MaxCount)
)

// ClassRule controls how one character class takes part in generation.
type ClassRule struct {
	Include bool
	Min     int
}

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length           int
	Rules            [NumClasses]ClassRule
	ExcludeAmbiguous bool
	// CustomChars are added to the pool as-is. They are never filtered for
	// ambiguity and have no minimum count.
	CustomChars string
}

// DefaultOptions returns 12 characters with every class enabled and one
// character of each class required.
func DefaultOptions() GeneratorOptions {
	opts := GeneratorOptions{Length: DefaultLength}
	for _, c := range Classes() {
		opts.Rules[c] = ClassRule{Include: true, Min: 1}
	}
	return opts
}

// Minimum returns the number of characters that must come from class c.
// Excluded classes always require zero.
func (o GeneratorOptions) Minimum(c CharacterClass) int {
	rule := o.Rules[c]
	if !rule.Include {
		return 0
	}
	return rule.Min
}

// Validate reports whether the options can produce a password.
func (o GeneratorOptions) Validate() error {
	_, err := o.plan()
	return err
}

type requirement struct {
	alphabet []rune
	count    int
}

// plan is a validated configuration: the joint pool plus the per-class
// draws that have to be made before filling from the pool.
type plan struct {
	length   int
	pool     []rune
	required []requirement
}

func (o GeneratorOptions) plan() (plan, error) {
	if o.Length < MinLength {
		return plan{}, ErrLengthTooShort
	}
	if o.Length > MaxLength {
		return plan{}, ErrLengthTooLong
	}

	p := plan{length: o.Length}
	total := 0
	for _, c := range Classes() {
		if !o.Rules[c].Include {
			continue
		}
		n := o.Minimum(c)
		if n < 0 {
			return plan{}, fmt.Errorf("%w (%s)", ErrNegativeMinimum, c)
		}

		alphabet := []rune(c.EffectiveAlphabet(o.ExcludeAmbiguous))
		p.pool = append(p.pool, alphabet...)
		if n > 0 {
			p.required = append(p.required, requirement{alphabet: alphabet, count: n})
			total += n
		}
	}
	p.pool = append(p.pool, []rune(o.CustomChars)...)

	if len(p.pool) == 0 {
		return plan{}, ErrEmptyPool
	}
	if total > o.Length {
		return plan{}, fmt.Errorf("%w (%d > %d)", ErrMinimumsExceedLength, total, o.Length)
	}

	return p, nil
}

// Generate creates a cryptographically secure random password based on the given options.
func Generate(opts GeneratorOptions) (string, error) {
	return generateFrom(rand.Reader, opts)
}

// GenerateMany creates count independent passwords with the same options.
func GenerateMany(opts GeneratorOptions, count int) ([]string, error) {
	return generateManyFrom(rand.Reader, opts, count)
}

func generateFrom(random io.Reader, opts GeneratorOptions) (string, error) {
	p, err := opts.plan()
	if err != nil {
		return "", err
	}
	return generate(random, p)
}

func generateManyFrom(random io.Reader, opts GeneratorOptions, count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if count > MaxCount {
		return nil, ErrCountTooLarge
	}
	p, err := opts.plan()
	if err != nil {
		return nil, err
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := generate(random, p)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

func generate(random io.Reader, p plan) (string, error) {
	result := make([]rune, 0, p.length)

	// Minimums first, each from its own class alphabet.
	for _, req := range p.required {
		for i := 0; i < req.count; i++ {
			ch, err := randRune(random, req.alphabet)
			if err != nil {
				return "", err
			}
			result = append(result, ch)
		}
	}

	// Fill the remaining positions from the full pool.
	for len(result) < p.length {
		ch, err := randRune(random, p.pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	// Position must not reveal which rule produced a character.
	if err := secureShuffle(random, result); err != nil {
		return "", err
	}

	return string(result), nil
}
