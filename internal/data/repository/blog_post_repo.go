package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BlogPostRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	FindPublished(ctx context.Context, limit, offset int) ([]*entity.BlogPost, error)
	CountPublished(ctx context.Context) (int64, error)
}

type blogPostRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogPostRepository(db database.PgxIface, log *zap.Logger) BlogPostRepository {
	return &blogPostRepository{
		db:  db,
		log: log.With(zap.String("repository", "blog_post")),
	}
}

const blogPostColumns = `id, title, slug, content, excerpt, category, cover_image_url,
		is_published, published_at, created_at, updated_at`

func (r *blogPostRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	query := `
		INSERT INTO blog_posts (id, title, slug, content, excerpt, category, cover_image_url,
			is_published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.Category,
		post.CoverImageURL,
		post.IsPublished,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create blog post",
			zap.Error(err),
			zap.String("slug", post.Slug),
		)
		return fmt.Errorf("create blog post %s: %w", post.Slug, translatePgError(err))
	}

	return nil
}

func (r *blogPostRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts WHERE slug = $1 AND is_published = true`, blogPostColumns)

	post, err := r.scanPost(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find blog post by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find blog post by slug %s: %w", slug, err)
	}

	return post, nil
}

func (r *blogPostRepository) FindPublished(ctx context.Context, limit, offset int) ([]*entity.BlogPost, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM blog_posts
		WHERE is_published = true
		ORDER BY published_at DESC NULLS LAST, created_at DESC
		LIMIT $1 OFFSET $2
	`, blogPostColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list blog posts", zap.Error(err))
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*entity.BlogPost
	for rows.Next() {
		post, err := r.scanPost(rows)
		if err != nil {
			r.log.Error("Failed to scan blog post row", zap.Error(err))
			return nil, fmt.Errorf("scan blog post row: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (r *blogPostRepository) CountPublished(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM blog_posts WHERE is_published = true`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count blog posts", zap.Error(err))
		return 0, fmt.Errorf("count blog posts: %w", err)
	}

	return count, nil
}

func (r *blogPostRepository) scanPost(row pgx.Row) (*entity.BlogPost, error) {
	var post entity.BlogPost
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Excerpt,
		&post.Category,
		&post.CoverImageURL,
		&post.IsPublished,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
