package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultBlogAuthor is used when a post is created without an author.
const DefaultBlogAuthor = "Admin"

// Blog is a post written in markdown. Only published posts are visible on
// the public surface; unpublished drafts are admin-only.
type Blog struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	CoverImage  string    `json:"coverImage"`
	Author      string    `json:"author"`
	Tags        []string  `json:"tags"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BlogDetail is a single post plus its rendered markdown.
type BlogDetail struct {
	Blog
	ContentHTML string `json:"contentHtml"`
}

// CreateBlogRequest is the admin payload for a new post. Unlike projects,
// the slug is part of the contract and required.
type CreateBlogRequest struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug" binding:"required"`
	Summary     string   `json:"summary"`
	Content     string   `json:"content"`
	CoverImage  string   `json:"coverImage"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
}

// UpdateBlogRequest is the allow-list of mutable blog fields.
type UpdateBlogRequest struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Summary     *string   `json:"summary"`
	Content     *string   `json:"content"`
	CoverImage  *string   `json:"coverImage"`
	Author      *string   `json:"author"`
	Tags        *[]string `json:"tags"`
	IsPublished *bool     `json:"isPublished"`
}

// Blog builds the full record from a create request, applying defaults.
func (r CreateBlogRequest) Blog() Blog {
	author := r.Author
	if author == "" {
		author = DefaultBlogAuthor
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return Blog{
		Title:       r.Title,
		Slug:        r.Slug,
		Summary:     r.Summary,
		Content:     r.Content,
		CoverImage:  r.CoverImage,
		Author:      author,
		Tags:        tags,
		IsPublished: r.IsPublished,
	}
}
