// Package validator holds the lexical checks applied to user-supplied identifiers.
package validator

import "regexp"

var artworkIDPattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{3}$`)

// IsValidArtworkID reports whether raw is three uppercase ASCII letters followed by three digits.
// Matching is case-sensitive; callers upper-case user input first.
func IsValidArtworkID(raw string) bool {
	return artworkIDPattern.MatchString(raw)
}
