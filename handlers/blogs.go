package handlers

import (
	"bytes"
	"net/http"
	"vantage/models"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// markdown renderer configured with Goldmark and useful extensions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(),
	),
)

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return content
	}
	return buf.String()
}

func CreateBlog(store BlogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		blog, err := store.CreateBlog(ctx, req.Blog())
		if err != nil {
			respondStoreError(c, err, "blog")
			return
		}

		c.JSON(http.StatusCreated, blog)
	}
}

// ListBlogs serves the public listing: published posts only.
func ListBlogs(store BlogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		blogs, err := store.ListBlogs(ctx, true)
		if err != nil {
			respondStoreError(c, err, "blog")
			return
		}

		c.JSON(http.StatusOK, blogs)
	}
}

// ListAllBlogs serves the admin listing with drafts included.
func ListAllBlogs(store BlogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		blogs, err := store.ListBlogs(ctx, false)
		if err != nil {
			respondStoreError(c, err, "blog")
			return
		}

		c.JSON(http.StatusOK, blogs)
	}
}

// GetBlog serves a published post by slug, including its rendered
// markdown.
func GetBlog(store BlogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		blog, err := store.GetPublishedBlogBySlug(ctx, c.Param("slug"))
		if err != nil {
			respondStoreError(c, err, "blog")
			return
		}

		c.JSON(http.StatusOK, models.BlogDetail{
			Blog:        *blog,
			ContentHTML: renderMarkdown(blog.Content),
		})
	}
}

func UpdateBlog(store BlogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var req models.UpdateBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		blog, err := store.UpdateBlog(ctx, id, req)
		if err != nil {
			respondStoreError(c, err, "blog")
			return
		}

		c.JSON(http.StatusOK, blog)
	}
}

func DeleteBlog(store BlogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		if err := store.DeleteBlog(ctx, id); err != nil {
			respondStoreError(c, err, "blog")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "blog deleted"})
	}
}
