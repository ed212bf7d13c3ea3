package validation

import (
	"strings"
	"unicode"
)

// specialChars is the fixed character set counted by the special-character
// check.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// MinAcceptableScore is the rejection threshold enforced by the
// registration schema: at least 4 of the 5 checks must pass.
const MinAcceptableScore = 4

// Strength is the outcome of the five password checks. Score is the number
// of checks that passed (0-5).
type Strength struct {
	HasUpper     bool
	HasLower     bool
	HasDigit     bool
	HasSpecial   bool
	HasMinLength bool
	Score        int
}

// Tier is the advisory classification shown by the live strength indicator.
// It is separate from the rejection threshold: a "medium" password (3/5)
// still fails registration.
type Tier string

const (
	TierWeak   Tier = "weak"
	TierMedium Tier = "medium"
	TierStrong Tier = "strong"
)

// Tier buckets the score: <=2 weak, 3 medium, >=4 strong.
func (s Strength) Tier() Tier {
	switch {
	case s.Score <= 2:
		return TierWeak
	case s.Score == 3:
		return TierMedium
	default:
		return TierStrong
	}
}

// CheckPasswordStrength runs the five boolean checks: uppercase letter,
// lowercase letter, digit, special character, and length >= 8.
func CheckPasswordStrength(password string) Strength {
	s := Strength{HasMinLength: len([]rune(password)) >= 8}
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			s.HasUpper = true
		case unicode.IsLower(r):
			s.HasLower = true
		case unicode.IsDigit(r):
			s.HasDigit = true
		case strings.ContainsRune(specialChars, r):
			s.HasSpecial = true
		}
	}
	for _, ok := range []bool{s.HasUpper, s.HasLower, s.HasDigit, s.HasSpecial, s.HasMinLength} {
		if ok {
			s.Score++
		}
	}
	return s
}
