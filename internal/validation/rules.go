package validation

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	// E.164-like: '+' then a non-zero digit then 1-14 digits.
	phoneRe = regexp.MustCompile(`^\+[1-9][0-9]{1,14}$`)
)

// Required fails on empty or whitespace-only values.
func Required(msg string) Rule {
	return Rule{
		Check:   func(v string, _ Values) bool { return strings.TrimSpace(v) != "" },
		Message: msg,
	}
}

// MinLength passes empty values through so Required (or optionality) decides
// about them, matching the usual schema-library semantics.
func MinLength(n int, msg string) Rule {
	return Rule{
		Check:   func(v string, _ Values) bool { return v == "" || len([]rune(v)) >= n },
		Message: msg,
	}
}

// MaxLength passes empty values through.
func MaxLength(n int, msg string) Rule {
	return Rule{
		Check:   func(v string, _ Values) bool { return len([]rune(v)) <= n },
		Message: msg,
	}
}

// Pattern passes empty values through; non-empty values must match re in
// full. Used for optional formatted fields such as phone numbers.
func Pattern(re *regexp.Regexp, msg string) Rule {
	return Rule{
		Check:   func(v string, _ Values) bool { return v == "" || re.MatchString(v) },
		Message: msg,
	}
}

// EmailSyntax passes empty values through; non-empty values must look like
// an email address.
func EmailSyntax(msg string) Rule {
	return Pattern(emailRe, msg)
}

// EqualsField is a cross-field rule: the value must equal the current value
// of the named other field.
func EqualsField(other string, msg string) Rule {
	return Rule{
		Check:   func(v string, form Values) bool { return v == form[other] },
		Message: msg,
	}
}

// IsTrue requires the value to be exactly "true" (checkbox semantics:
// absent, empty and "false" all fail).
func IsTrue(msg string) Rule {
	return Rule{
		Check:   func(v string, _ Values) bool { return v == "true" },
		Message: msg,
	}
}

// StrongPassword passes empty values through (Required decides) and
// otherwise demands a strength score of at least MinAcceptableScore.
func StrongPassword(msg string) Rule {
	return Rule{
		Check: func(v string, _ Values) bool {
			return v == "" || CheckPasswordStrength(v).Score >= MinAcceptableScore
		},
		Message: msg,
	}
}
