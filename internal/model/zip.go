package model

import (
	"errors"
	"regexp"
	"strings"
)

// ZipLength is the number of digits in a US ZIP code.
const ZipLength = 5

// ErrInvalidZip is returned when a value is not exactly five decimal digits.
var ErrInvalidZip = errors.New("zip code must be exactly 5 digits")

var zipPattern = regexp.MustCompile(`^[0-9]{5}$`)

// FilterZipInput removes every non-digit character from raw and truncates the
// result to ZipLength characters. It never fails; malformed input is corrected.
func FilterZipInput(raw string) string {
	var b strings.Builder
	b.Grow(ZipLength)
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == ZipLength {
			break
		}
	}
	return b.String()
}

// IsValidZip reports whether zip can be sent to the postal service.
func IsValidZip(zip string) bool {
	return zipPattern.MatchString(zip)
}

// ParseZip validates zip and returns it unchanged, or ErrInvalidZip.
func ParseZip(zip string) (string, error) {
	if !IsValidZip(zip) {
		return "", ErrInvalidZip
	}
	return zip, nil
}
