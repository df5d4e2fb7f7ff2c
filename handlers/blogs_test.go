package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"vantage/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBlog_RequiresSlug(t *testing.T) {
	env := newTestEnv(nil)
	token := env.adminToken()

	w := env.do("POST", "/api/blogs", `{"title": "No Slug"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBlog_DefaultsUnpublished(t *testing.T) {
	env := newTestEnv(nil)
	token := env.adminToken()

	w := env.do("POST", "/api/blogs", `{"title": "Draft", "slug": "draft"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var blog models.Blog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &blog))
	assert.False(t, blog.IsPublished)
	assert.Equal(t, models.DefaultBlogAuthor, blog.Author)
}

func TestListBlogs_PublicSeesPublishedOnly(t *testing.T) {
	env := newTestEnv(nil)
	token := env.adminToken()

	env.do("POST", "/api/blogs", `{"title": "Draft", "slug": "draft"}`, token)
	env.do("POST", "/api/blogs", `{"title": "Live", "slug": "live", "isPublished": true}`, token)

	w := env.do("GET", "/api/blogs", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var blogs []models.Blog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &blogs))
	require.Len(t, blogs, 1)
	assert.Equal(t, "Live", blogs[0].Title)
}

func TestListBlogs_AdminSeesEverything(t *testing.T) {
	env := newTestEnv(nil)
	token := env.adminToken()

	env.do("POST", "/api/blogs", `{"title": "Draft", "slug": "draft"}`, token)
	env.do("POST", "/api/blogs", `{"title": "Live", "slug": "live", "isPublished": true}`, token)

	w := env.do("GET", "/api/blogs/all", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var blogs []models.Blog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &blogs))
	assert.Len(t, blogs, 2)
}

func TestListBlogs_AdminListingRequiresAuth(t *testing.T) {
	env := newTestEnv(nil)

	w := env.do("GET", "/api/blogs/all", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetBlog_RendersMarkdown(t *testing.T) {
	env := newTestEnv(nil)
	token := env.adminToken()

	payload := `{"title": "Hello", "slug": "hello", "isPublished": true,
		"content": "# Heading\n\nSome **bold** text."}`
	created := env.do("POST", "/api/blogs", payload, token)
	require.Equal(t, http.StatusCreated, created.Code)

	w := env.do("GET", "/api/blogs/hello", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.BlogDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Contains(t, detail.ContentHTML, "<h1")
	assert.Contains(t, detail.ContentHTML, "<strong>bold</strong>")
	assert.Equal(t, "# Heading\n\nSome **bold** text.", detail.Content)
}

func TestGetBlog_DraftHiddenFromPublic(t *testing.T) {
	env := newTestEnv(nil)
	token := env.adminToken()

	env.do("POST", "/api/blogs", `{"title": "Draft", "slug": "draft"}`, token)

	w := env.do("GET", "/api/blogs/draft", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateBlog_PublishFlow(t *testing.T) {
	env := newTestEnv(nil)
	token := env.adminToken()

	created := env.do("POST", "/api/blogs", `{"title": "Draft", "slug": "draft"}`, token)
	var blog models.Blog
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &blog))

	w := env.do("PUT", "/api/blogs/"+blog.ID.String(), `{"isPublished": true}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Blog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(t, updated.IsPublished)
	assert.Equal(t, "Draft", updated.Title)

	// now publicly visible
	public := env.do("GET", "/api/blogs/draft", "", "")
	assert.Equal(t, http.StatusOK, public.Code)
}

func TestDeleteBlog_NotFound(t *testing.T) {
	env := newTestEnv(nil)
	token := env.adminToken()

	w := env.do("DELETE", "/api/blogs/c1a55e77-0000-4000-8000-000000000000", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogMutations_RequireAdmin(t *testing.T) {
	env := newTestEnv(nil)
	userToken := env.userToken()

	before := env.store.mutations

	w := env.do("POST", "/api/blogs", `{"title": "X", "slug": "x"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do("POST", "/api/blogs", `{"title": "X", "slug": "x"}`, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	assert.Equal(t, before, env.store.mutations)
}
