// Package validation holds the form-input predicates shared between
// handlers and use cases. Request DTOs additionally carry validator tags;
// these predicates cover the checks tags cannot express (image files,
// generated passwords) and keep the rules in one place.
package validation

import (
	"math"
	"regexp"
	"strings"
)

// MaxImageSize is the largest accepted image upload, in bytes.
const MaxImageSize = 5 * 1024 * 1024

// MinPasswordLength matches the identity provider's minimum.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// Email reports whether s has a plausible email shape.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Password reports whether s meets the minimum length requirement.
func Password(s string) bool {
	return len(s) >= MinPasswordLength
}

// Required reports whether s is non-empty after trimming whitespace.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Price reports whether v is a valid non-negative price.
func Price(v float64) bool {
	return !math.IsNaN(v) && v >= 0
}

// Discount reports whether v is a valid discount percentage in [0,100].
func Discount(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 100
}

// ImageFile reports whether an upload with the given MIME type and size is
// acceptable.
func ImageFile(contentType string, size int64) bool {
	if size <= 0 || size > MaxImageSize {
		return false
	}
	_, ok := allowedImageTypes[strings.ToLower(contentType)]

	return ok
}
