package database

import (
	"context"
	"testing"
	"vantage/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBlog(t *testing.T) {
	db := integrationDB(t)
	ctx := context.Background()

	blog, err := db.CreateBlog(ctx, models.Blog{
		Title:   "First Post",
		Slug:    "first-post",
		Author:  "Admin",
		Content: "# Hello",
		Tags:    []string{"news"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, blog.ID)
	assert.Equal(t, "first-post", blog.Slug)
	assert.False(t, blog.IsPublished)
	assert.False(t, blog.CreatedAt.IsZero())
}

func TestCreateBlog_DuplicateSlug(t *testing.T) {
	db := integrationDB(t)
	ctx := context.Background()

	_, err := db.CreateBlog(ctx, models.Blog{Title: "One", Slug: "same", Author: "Admin"})
	require.NoError(t, err)

	_, err = db.CreateBlog(ctx, models.Blog{Title: "Two", Slug: "same", Author: "Admin"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestListBlogs_PublishFilter(t *testing.T) {
	db := integrationDB(t)
	ctx := context.Background()

	_, err := db.CreateBlog(ctx, models.Blog{Title: "Draft", Slug: "draft", Author: "Admin"})
	require.NoError(t, err)
	_, err = db.CreateBlog(ctx, models.Blog{Title: "Live", Slug: "live", Author: "Admin", IsPublished: true})
	require.NoError(t, err)

	public, err := db.ListBlogs(ctx, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Live", public[0].Title)

	all, err := db.ListBlogs(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetPublishedBlogBySlug(t *testing.T) {
	db := integrationDB(t)
	ctx := context.Background()

	_, err := db.CreateBlog(ctx, models.Blog{Title: "Draft", Slug: "draft", Author: "Admin"})
	require.NoError(t, err)
	created, err := db.CreateBlog(ctx, models.Blog{Title: "Live", Slug: "live", Author: "Admin", IsPublished: true})
	require.NoError(t, err)

	blog, err := db.GetPublishedBlogBySlug(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, created.ID, blog.ID)

	// drafts are invisible on the public path
	_, err = db.GetPublishedBlogBySlug(ctx, "draft")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBlog_Publish(t *testing.T) {
	db := integrationDB(t)
	ctx := context.Background()

	created, err := db.CreateBlog(ctx, models.Blog{Title: "Draft", Slug: "draft", Author: "Admin"})
	require.NoError(t, err)

	published := true
	updated, err := db.UpdateBlog(ctx, created.ID, models.UpdateBlogRequest{IsPublished: &published})
	require.NoError(t, err)
	assert.True(t, updated.IsPublished)
	assert.Equal(t, "Draft", updated.Title)
}

func TestUpdateBlog_NotFound(t *testing.T) {
	db := integrationDB(t)
	ctx := context.Background()

	title := "Renamed"
	_, err := db.UpdateBlog(ctx, uuid.New(), models.UpdateBlogRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBlog(t *testing.T) {
	db := integrationDB(t)
	ctx := context.Background()

	created, err := db.CreateBlog(ctx, models.Blog{Title: "Doomed", Slug: "doomed", Author: "Admin"})
	require.NoError(t, err)

	require.NoError(t, db.DeleteBlog(ctx, created.ID))
	assert.ErrorIs(t, db.DeleteBlog(ctx, created.ID), ErrNotFound)
}
