package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"vantage/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const blogColumns = `id, title, slug, summary, content, cover_image,
	author, tags, is_published, created_at, updated_at`

func (db *DB) CreateBlog(ctx context.Context, b models.Blog) (*models.Blog, error) {
	query := fmt.Sprintf(`
		INSERT INTO blogs (title, slug, summary, content, cover_image,
			author, tags, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, blogColumns)

	created, err := scanBlog(db.Pool.QueryRow(ctx, query,
		b.Title, b.Slug, b.Summary, b.Content, b.CoverImage,
		b.Author, b.Tags, b.IsPublished,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("slug %q: %w", b.Slug, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	log.Printf("Created blog: %s (ID: %s)", created.Title, created.ID)
	return created, nil
}

// ListBlogs returns posts newest first. publishedOnly applies the public
// visibility filter; admin callers pass false to see drafts too.
func (db *DB) ListBlogs(ctx context.Context, publishedOnly bool) ([]models.Blog, error) {
	query := fmt.Sprintf(`SELECT %s FROM blogs ORDER BY created_at DESC`, blogColumns)
	if publishedOnly {
		query = fmt.Sprintf(`
			SELECT %s FROM blogs WHERE is_published = TRUE
			ORDER BY created_at DESC
		`, blogColumns)
	}

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, *blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blogs: %w", err)
	}

	return blogs, nil
}

func (db *DB) GetBlog(ctx context.Context, blogID uuid.UUID) (*models.Blog, error) {
	query := fmt.Sprintf(`SELECT %s FROM blogs WHERE id = $1`, blogColumns)

	blog, err := scanBlog(db.Pool.QueryRow(ctx, query, blogID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	return blog, nil
}

// GetPublishedBlogBySlug backs the public detail page; drafts stay hidden.
func (db *DB) GetPublishedBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM blogs WHERE slug = $1 AND is_published = TRUE
	`, blogColumns)

	blog, err := scanBlog(db.Pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	return blog, nil
}

func (db *DB) UpdateBlog(ctx context.Context, blogID uuid.UUID, upd models.UpdateBlogRequest) (*models.Blog, error) {
	ub := NewUpdateBuilder()
	setIf(ub, "title", upd.Title)
	setIf(ub, "slug", upd.Slug)
	setIf(ub, "summary", upd.Summary)
	setIf(ub, "content", upd.Content)
	setIf(ub, "cover_image", upd.CoverImage)
	setIf(ub, "author", upd.Author)
	setIf(ub, "tags", upd.Tags)
	setIf(ub, "is_published", upd.IsPublished)

	if ub.Empty() {
		return db.GetBlog(ctx, blogID)
	}

	query := fmt.Sprintf(`
		UPDATE blogs %s WHERE id = $%d RETURNING %s
	`, ub.SetClause(), ub.NextArgNum(), blogColumns)
	args := append(ub.Args(), blogID)

	blog, err := scanBlog(db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("blog slug: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	return blog, nil
}

func (db *DB) DeleteBlog(ctx context.Context, blogID uuid.UUID) error {
	query := `DELETE FROM blogs WHERE id = $1`

	result, err := db.Pool.Exec(ctx, query, blogID)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	log.Printf("Deleted blog: %s", blogID)
	return nil
}

func scanBlog(row rowScanner) (*models.Blog, error) {
	var b models.Blog
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Slug,
		&b.Summary,
		&b.Content,
		&b.CoverImage,
		&b.Author,
		&b.Tags,
		&b.IsPublished,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
