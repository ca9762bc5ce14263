package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.StrictPolicy()

// Sanitize strips markup from user-supplied text such as titles and
// category names.
func Sanitize(input string) string {
	return strings.TrimSpace(sanitizer.Sanitize(input))
}
