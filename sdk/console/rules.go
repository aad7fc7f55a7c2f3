package console

import (
	"regexp"
	"strings"
	"time"
)

// Rule checks one aspect of a field value and returns an error message,
// or "" when the value passes. Rules on a field run in priority order:
// required, then format, then length, then derived checks; the first
// violation wins.
type Rule struct {
	priority int
	check    func(value string, now time.Time) string
}

const (
	priorityRequired = iota
	priorityFormat
	priorityLength
	priorityDerived
)

var (
	emailPattern    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern    = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	idNumberPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	ibanPattern     = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]+$`)
	nonDigits       = regexp.MustCompile(`\D`)
)

const wizardDateLayout = "2006-01-02"

// Required fails on empty or whitespace-only values.
func Required(message string) Rule {
	return Rule{
		priority: priorityRequired,
		check: func(value string, _ time.Time) string {
			if strings.TrimSpace(value) == "" {
				return message
			}
			return ""
		},
	}
}

func formatRule(pattern *regexp.Regexp, message string) Rule {
	return Rule{
		priority: priorityFormat,
		check: func(value string, _ time.Time) string {
			if value == "" {
				return ""
			}
			if !pattern.MatchString(value) {
				return message
			}
			return ""
		},
	}
}

// Email checks the console's loose email shape.
func Email(message string) Rule {
	return formatRule(emailPattern, message)
}

// Phone accepts digits, spaces, dashes, plus and parentheses, and
// requires at least seven digits.
func Phone(message string) Rule {
	return Rule{
		priority: priorityFormat,
		check: func(value string, _ time.Time) string {
			if value == "" {
				return ""
			}
			if !phonePattern.MatchString(value) {
				return message
			}
			if len(nonDigits.ReplaceAllString(value, "")) < 7 {
				return message
			}
			return ""
		},
	}
}

// AlphanumericID allows letters and digits only.
func AlphanumericID(message string) Rule {
	return formatRule(idNumberPattern, message)
}

// IBAN checks the country-code/check-digit shape after stripping spaces.
func IBAN(message string) Rule {
	return Rule{
		priority: priorityFormat,
		check: func(value string, _ time.Time) string {
			if value == "" {
				return ""
			}
			if !ibanPattern.MatchString(strings.ReplaceAll(value, " ", "")) {
				return message
			}
			return ""
		},
	}
}

// MinLength fails trimmed values shorter than n.
func MinLength(n int, message string) Rule {
	return Rule{
		priority: priorityLength,
		check: func(value string, _ time.Time) string {
			if value == "" {
				return ""
			}
			if len(strings.TrimSpace(value)) < n {
				return message
			}
			return ""
		},
	}
}

// MinimumAge requires the date (YYYY-MM-DD) to be at least years old,
// with calendar-adjusted arithmetic: the birthday must have passed.
func MinimumAge(years int, message string) Rule {
	return Rule{
		priority: priorityDerived,
		check: func(value string, now time.Time) string {
			t, ok := parseDate(value)
			if !ok {
				return ""
			}
			age := now.Year() - t.Year()
			if now.Month() < t.Month() || (now.Month() == t.Month() && now.Day() < t.Day()) {
				age--
			}
			if age < years {
				return message
			}
			return ""
		},
	}
}

// FutureDate requires the date to be strictly after today.
func FutureDate(message string) Rule {
	return Rule{
		priority: priorityDerived,
		check: func(value string, now time.Time) string {
			t, ok := parseDate(value)
			if !ok {
				return ""
			}
			if !t.After(now) {
				return message
			}
			return ""
		},
	}
}

// PastDate requires the date to be strictly before now.
func PastDate(message string) Rule {
	return Rule{
		priority: priorityDerived,
		check: func(value string, now time.Time) string {
			t, ok := parseDate(value)
			if !ok {
				return ""
			}
			if !t.Before(now) {
				return message
			}
			return ""
		},
	}
}

// DateFormat fails values that do not parse as YYYY-MM-DD.
func DateFormat(message string) Rule {
	return Rule{
		priority: priorityFormat,
		check: func(value string, _ time.Time) string {
			if value == "" {
				return ""
			}
			if _, ok := parseDate(value); !ok {
				return message
			}
			return ""
		},
	}
}

func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse(wizardDateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FieldRules binds a field name to its ordered rule set.
type FieldRules map[string][]Rule

// evaluate runs the field's rules in priority order and returns the
// first violation.
func (fr FieldRules) evaluate(field, value string, now time.Time) string {
	rules := append([]Rule(nil), fr[field]...)
	for p := priorityRequired; p <= priorityDerived; p++ {
		for _, rule := range rules {
			if rule.priority != p {
				continue
			}
			if msg := rule.check(value, now); msg != "" {
				return msg
			}
		}
	}
	return ""
}

// SupervisorRules is the rule set behind the supervisor creation
// wizard, mirroring the console form field for field.
func SupervisorRules() FieldRules {
	return FieldRules{
		"firstName": {
			Required("First name is required"),
			MinLength(2, "First name must be at least 2 characters"),
		},
		"lastName": {
			Required("Last name is required"),
			MinLength(2, "Last name must be at least 2 characters"),
		},
		"idNumber": {
			Required("ID number is required"),
			AlphanumericID("ID number should contain only letters and numbers"),
		},
		"telephone": {
			Required("Telephone is required"),
			Phone("Invalid phone number"),
		},
		"officialEmail": {
			Required("Official email is required"),
			Email("Invalid email address"),
		},
		"country": {
			Required("Country is required"),
		},
		"region": {
			Required("Region is required"),
		},
		"city": {
			Required("City is required"),
		},
		"address": {
			Required("Address is required"),
			MinLength(10, "Address must be at least 10 characters"),
		},
		"bankName": {
			Required("Bank name is required"),
		},
		"ibanNumber": {
			Required("IBAN number is required"),
			IBAN("Invalid IBAN number"),
		},
		"graduationCertificate": {
			Required("Graduation certificate is required"),
		},
		"acquiredLanguages": {
			Required("Acquired languages are required"),
		},
		"type": {
			Required("Type is required"),
		},
		"dateOfBirth": {
			Required("Date of birth is required"),
			DateFormat("Invalid date"),
			PastDate("Date of birth must be in the past"),
			MinimumAge(18, "Must be at least 18 years old"),
		},
		"idExpiryDate": {
			Required("ID expiry date is required"),
			DateFormat("Invalid date"),
			FutureDate("ID expiry date must be in the future"),
		},
	}
}
