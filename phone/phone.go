// Package phone validates and normalizes destination phone numbers before
// they are handed to the gateway.
//
// The rules are intentionally simple: a general international pattern plus
// the Tanzanian mobile number plan the gateway is primarily used with.
package phone

import (
	"regexp"
	"strings"
)

// CountryCode is the dialing code assumed for local numbers.
const CountryCode = "255"

var (
	// punctuation that callers commonly use to format numbers, including
	// Unicode separators such as the no-break space.
	punctuation = regexp.MustCompile(`[\s\p{Z}\-()]`)

	// international matches an optional '+', a leading 1-9 digit, 8-15 digits in total.
	international = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)

	regional = []*regexp.Regexp{
		regexp.MustCompile(`^\+255[67]\d{8}$`), // +255 7XXXXXXXX
		regexp.MustCompile(`^255[67]\d{8}$`),   // 255 7XXXXXXXX
		regexp.MustCompile(`^0[67]\d{8}$`),     // 07XXXXXXXX
	}
)

// strip removes whitespace, hyphens and parentheses.
func strip(raw string) string {
	return punctuation.ReplaceAllString(raw, "")
}

// Validate reports whether raw looks like a dialable number once formatting
// characters are removed. Empty input is invalid.
func Validate(raw string) bool {
	if raw == "" {
		return false
	}

	cleaned := strip(raw)
	if international.MatchString(cleaned) {
		return true
	}

	for _, re := range regional {
		if re.MatchString(cleaned) {
			return true
		}
	}
	return false
}

// Clean strips formatting characters and rewrites the number into
// international form:
//
//	0712345678    -> +255712345678
//	255712345678  -> +255712345678
//	712345678     -> +255712345678
//
// Clean does not validate its result; call Validate first.
//
// Any number that has neither a leading '+', a leading zero, nor the bare
// country code gets the country prefix unconditionally, so foreign numbers
// written without '+' come out wrong (e.g. "14155550100" becomes
// "+25514155550100").
func Clean(raw string) string {
	cleaned := strip(raw)

	switch {
	case strings.HasPrefix(cleaned, "0"):
		return "+" + CountryCode + cleaned[1:]
	case strings.HasPrefix(cleaned, CountryCode):
		return "+" + cleaned
	case !strings.HasPrefix(cleaned, "+"):
		return "+" + CountryCode + cleaned
	}
	return cleaned
}

// ValidateBatch validates each number, preserving order.
func ValidateBatch(numbers []string) []bool {
	out := make([]bool, len(numbers))
	for i, n := range numbers {
		out[i] = Validate(n)
	}
	return out
}
