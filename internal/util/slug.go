package util

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Slugify lowercases the title and collapses every run of
// non-alphanumeric characters into a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// UniqueSlug appends the base36 creation timestamp (milliseconds) so two
// resources with the same title never collide in practice, without a
// uniqueness round-trip against the store.
func UniqueSlug(title string, now time.Time) string {
	return Slugify(title) + "-" + strconv.FormatInt(now.UnixMilli(), 36)
}
