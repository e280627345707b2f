package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type FAQResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type BlogPostListItemResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Category      string     `json:"category"`
	CoverImageURL *string    `json:"cover_image_url,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
}

type BlogPostDetailResponse struct {
	BlogPostListItemResponse
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FAQToResponse(faq *entity.FAQ) FAQResponse {
	return FAQResponse{
		ID:       faq.ID.String(),
		Question: faq.Question,
		Answer:   faq.Answer,
		Category: string(faq.Category),
	}
}

func BlogPostToListItem(post *entity.BlogPost) BlogPostListItemResponse {
	return BlogPostListItemResponse{
		ID:            post.ID.String(),
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       post.Excerpt,
		Category:      string(post.Category),
		CoverImageURL: post.CoverImageURL,
		PublishedAt:   post.PublishedAt,
	}
}

func BlogPostToDetail(post *entity.BlogPost) BlogPostDetailResponse {
	return BlogPostDetailResponse{
		BlogPostListItemResponse: BlogPostToListItem(post),
		Content:                  post.Content,
		UpdatedAt:                post.UpdatedAt,
	}
}
