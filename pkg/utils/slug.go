package utils

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Slugify derives a URL identifier from a human-readable title: the
// transliterated, lowercased title plus an 8-character random suffix.
// Result matches [a-z0-9-]+-[0-9a-f]{8}. Uniqueness rests on the suffix;
// the unique index on the slug column is the backstop.
func Slugify(title string) string {
	return fmt.Sprintf("%s-%s", slug.Make(title), uuid.New().String()[:8])
}
