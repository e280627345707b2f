package request

type CreateFAQRequest struct {
	Question     string `json:"question" validate:"required"`
	Answer       string `json:"answer" validate:"required"`
	Category     string `json:"category" validate:"required,oneof=safety payment docs transport food connection other"`
	DisplayOrder int    `json:"display_order" validate:"min=0"`
}

type CreateBlogPostRequest struct {
	Title         string  `json:"title" validate:"required,max=255"`
	Slug          string  `json:"slug,omitempty" validate:"omitempty,max=255"`
	Content       string  `json:"content" validate:"required"`
	Excerpt       string  `json:"excerpt" validate:"required,max=300"`
	Category      string  `json:"category" validate:"required,oneof=guides tips culture news"`
	CoverImageURL *string `json:"cover_image_url,omitempty" validate:"omitempty,url"`
	IsPublished   bool    `json:"is_published"`
}
