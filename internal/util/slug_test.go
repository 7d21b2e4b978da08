package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Intro to Go", "intro-to-go"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"C++ & Rust!", "c-rust"},
		{"Already-slugged", "already-slugged"},
		{"UPPER case 123", "upper-case-123"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestUniqueSlugAppendsTimestampSuffix(t *testing.T) {
	now := time.Now()
	slug := UniqueSlug("Intro to Go", now)

	assert.True(t, strings.HasPrefix(slug, "intro-to-go-"))

	later := now.Add(time.Millisecond)
	assert.NotEqual(t, slug, UniqueSlug("Intro to Go", later))
}
