package model

import (
	"strings"
	"time"
	"unicode"
)

// Topic represents a named tag with a URL-safe slug.
type Topic struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt int64  `json:"createdAt"` // epoch milliseconds
}

// NewTopic creates a Topic with generated UUID, derived slug and timestamp.
func NewTopic(name string) Topic {
	return Topic{
		ID:        GenerateUUID(),
		Name:      name,
		Slug:      Slugify(name),
		CreatedAt: time.Now().UnixMilli(),
	}
}

// Slugify derives a URL-safe slug: lowercase, runs of non-alphanumeric
// characters collapse to single hyphens, leading/trailing hyphens dropped.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
