package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+-[0-9a-f]{8}$`)

func TestSlugify(t *testing.T) {
	t.Run("latin title", func(t *testing.T) {
		s := Slugify("Weekend in the Mountains")
		assert.Regexp(t, slugPattern, s)
		assert.Contains(t, s, "weekend-in-the-mountains-")
	})

	t.Run("cyrillic title is transliterated", func(t *testing.T) {
		s := Slugify("Тур по Грузии")
		assert.Regexp(t, slugPattern, s)
		assert.Contains(t, s, "tur-po-gruzii-")
	})

	t.Run("same title gets distinct slugs", func(t *testing.T) {
		a := Slugify("Тур по Грузии")
		b := Slugify("Тур по Грузии")
		assert.NotEqual(t, a, b)
	})
}
