// SPDX-License-Identifier: Apache-2.0

package service

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every HTML element and escapes the remaining special
// characters, which matches the strip-tags-then-escape normalization applied
// to free-text input before storage.
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText normalizes a free-text field for storage: leading and
// trailing whitespace is trimmed, markup tags are stripped, and HTML
// special characters are escaped.
func SanitizeText(value string) string {
	return strictPolicy.Sanitize(strings.TrimSpace(value))
}

// emailSpecials lists the non-alphanumeric characters an e-mail address may
// contain. Everything outside this set and [a-zA-Z0-9] is dropped.
const emailSpecials = "!#$%&'*+-=?^_`{|}~@.[]"

// SanitizeEmail removes every character that cannot appear in an e-mail
// address. It does NOT validate that the result is a well-formed address.
func SanitizeEmail(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			strings.ContainsRune(emailSpecials, r):
			return r
		default:
			return -1
		}
	}, value)
}
