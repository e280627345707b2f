package entity

import (
	"time"
)

type BlogCategory string

const (
	BlogCategoryGuides  BlogCategory = "guides"
	BlogCategoryTips    BlogCategory = "tips"
	BlogCategoryCulture BlogCategory = "culture"
	BlogCategoryNews    BlogCategory = "news"
)

// BlogPost gets its slug from the same assigner as Tour.
type BlogPost struct {
	Base
	Title         string       `db:"title"`
	Slug          string       `db:"slug"`
	Content       string       `db:"content"`
	Excerpt       string       `db:"excerpt"`
	Category      BlogCategory `db:"category"`
	CoverImageURL *string      `db:"cover_image_url"`
	IsPublished   bool         `db:"is_published"`
	PublishedAt   *time.Time   `db:"published_at"`
}
