package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContentService covers the editorial surface: FAQ entries and blog posts.
type ContentService interface {
	GetFAQ(ctx context.Context, category string) ([]response.FAQResponse, error)
	CreateFAQ(ctx context.Context, req *request.CreateFAQRequest) (*response.FAQResponse, error)

	GetBlogPosts(ctx context.Context, pg *request.PaginatedRequest) (*response.PaginatedResponse[response.BlogPostListItemResponse], error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*response.BlogPostDetailResponse, error)
	CreateBlogPost(ctx context.Context, req *request.CreateBlogPostRequest) (*response.BlogPostDetailResponse, error)
}

type contentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContentService(repo *repository.Repository, log *zap.Logger) ContentService {
	return &contentService{
		repo: repo,
		log:  log.With(zap.String("service", "content")),
	}
}

func (s *contentService) GetFAQ(ctx context.Context, category string) ([]response.FAQResponse, error) {
	var scope *entity.FAQCategory
	if category != "" {
		c := entity.FAQCategory(category)
		switch c {
		case entity.FAQCategorySafety, entity.FAQCategoryPayment, entity.FAQCategoryDocs,
			entity.FAQCategoryTransport, entity.FAQCategoryFood, entity.FAQCategoryConnection,
			entity.FAQCategoryOther:
			scope = &c
		default:
			return nil, utils.NewFieldError("category",
				"Must be one of: safety, payment, docs, transport, food, connection, other")
		}
	}

	faqs, err := s.repo.FAQ.FindActive(ctx, scope)
	if err != nil {
		s.log.Error("Failed to list FAQ", zap.Error(err))
		return nil, fmt.Errorf("list FAQ: %w", err)
	}

	responses := make([]response.FAQResponse, len(faqs))
	for i, faq := range faqs {
		responses[i] = response.FAQToResponse(faq)
	}

	return responses, nil
}

func (s *contentService) CreateFAQ(ctx context.Context, req *request.CreateFAQRequest) (*response.FAQResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create FAQ validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	faq := &entity.FAQ{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Question:     req.Question,
		Answer:       req.Answer,
		Category:     entity.FAQCategory(req.Category),
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}

	if err := s.repo.FAQ.Create(ctx, faq); err != nil {
		return nil, fmt.Errorf("create FAQ: %w", err)
	}

	s.log.Info("FAQ created",
		zap.String("faq_id", faq.ID.String()),
		zap.String("category", req.Category),
	)

	resp := response.FAQToResponse(faq)
	return &resp, nil
}

func (s *contentService) GetBlogPosts(ctx context.Context, pg *request.PaginatedRequest) (*response.PaginatedResponse[response.BlogPostListItemResponse], error) {
	posts, err := s.repo.BlogPost.FindPublished(ctx, pg.Limit(), pg.Offset())
	if err != nil {
		s.log.Error("Failed to list blog posts", zap.Error(err))
		return nil, fmt.Errorf("list blog posts: %w", err)
	}

	total, err := s.repo.BlogPost.CountPublished(ctx)
	if err != nil {
		s.log.Error("Failed to count blog posts", zap.Error(err))
		return nil, fmt.Errorf("count blog posts: %w", err)
	}

	items := make([]response.BlogPostListItemResponse, len(posts))
	for i, post := range posts {
		items[i] = response.BlogPostToListItem(post)
	}

	return response.NewPaginatedResponse(items, pg.Page, pg.Limit(), total), nil
}

func (s *contentService) GetBlogPostBySlug(ctx context.Context, slug string) (*response.BlogPostDetailResponse, error) {
	post, err := s.repo.BlogPost.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	if post == nil || !post.IsPublished {
		return nil, fmt.Errorf("blog post %s not found", slug)
	}

	resp := response.BlogPostToDetail(post)
	return &resp, nil
}

func (s *contentService) CreateBlogPost(ctx context.Context, req *request.CreateBlogPostRequest) (*response.BlogPostDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create blog post validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	now := time.Now()
	post := &entity.BlogPost{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:         req.Title,
		Slug:          slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Category:      entity.BlogCategory(req.Category),
		CoverImageURL: req.CoverImageURL,
		IsPublished:   req.IsPublished,
	}
	if req.IsPublished {
		post.PublishedAt = &now
	}

	if err := s.repo.BlogPost.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.NewFieldError("slug", "A blog post with this slug already exists")
		}
		return nil, fmt.Errorf("create blog post: %w", err)
	}

	s.log.Info("Blog post created",
		zap.String("post_id", post.ID.String()),
		zap.String("slug", post.Slug),
		zap.Bool("is_published", post.IsPublished),
	)

	resp := response.BlogPostToDetail(post)
	return &resp, nil
}
