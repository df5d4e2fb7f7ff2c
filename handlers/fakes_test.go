package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"
	"vantage/auth"
	"vantage/database"
	"vantage/imagestore"
	"vantage/middleware"
	"vantage/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// In-memory fakes backing handler tests. They mirror the store contracts:
// newest-first listings, ErrNotFound/ErrDuplicate sentinels, server-side
// ids and timestamps.

type fakeStore struct {
	projects  []models.Project
	blogs     []models.Blog
	leads     []models.Lead
	users     map[uuid.UUID]*models.User
	mutations int
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[uuid.UUID]*models.User{}}
}

func (f *fakeStore) CreateProject(_ context.Context, p models.Project) (*models.Project, error) {
	for _, existing := range f.projects {
		if existing.Slug == p.Slug {
			return nil, database.ErrDuplicate
		}
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.projects = append(f.projects, p)
	f.mutations++
	return &p, nil
}

func (f *fakeStore) ListProjects(_ context.Context) ([]models.Project, error) {
	out := make([]models.Project, 0, len(f.projects))
	for i := len(f.projects) - 1; i >= 0; i-- {
		out = append(out, f.projects[i])
	}
	return out, nil
}

func (f *fakeStore) GetProject(_ context.Context, projectID uuid.UUID) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == projectID {
			p := f.projects[i]
			return &p, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) GetProjectBySlug(_ context.Context, slug string) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].Slug == slug {
			p := f.projects[i]
			return &p, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) UpdateProject(_ context.Context, projectID uuid.UUID, upd models.UpdateProjectRequest) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID != projectID {
			continue
		}
		p := &f.projects[i]
		if upd.Title != nil {
			p.Title = *upd.Title
		}
		if upd.Slug != nil {
			p.Slug = *upd.Slug
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.Featured != nil {
			p.Featured = *upd.Featured
		}
		if upd.Tags != nil {
			p.Tags = *upd.Tags
		}
		p.UpdatedAt = time.Now()
		f.mutations++
		out := *p
		return &out, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) DeleteProject(_ context.Context, projectID uuid.UUID) error {
	for i := range f.projects {
		if f.projects[i].ID == projectID {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			f.mutations++
			return nil
		}
	}
	return database.ErrNotFound
}

func (f *fakeStore) CreateBlog(_ context.Context, b models.Blog) (*models.Blog, error) {
	for _, existing := range f.blogs {
		if existing.Slug == b.Slug {
			return nil, database.ErrDuplicate
		}
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.blogs = append(f.blogs, b)
	f.mutations++
	return &b, nil
}

func (f *fakeStore) ListBlogs(_ context.Context, publishedOnly bool) ([]models.Blog, error) {
	out := []models.Blog{}
	for i := len(f.blogs) - 1; i >= 0; i-- {
		if publishedOnly && !f.blogs[i].IsPublished {
			continue
		}
		out = append(out, f.blogs[i])
	}
	return out, nil
}

func (f *fakeStore) GetBlog(_ context.Context, blogID uuid.UUID) (*models.Blog, error) {
	for i := range f.blogs {
		if f.blogs[i].ID == blogID {
			b := f.blogs[i]
			return &b, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) GetPublishedBlogBySlug(_ context.Context, slug string) (*models.Blog, error) {
	for i := range f.blogs {
		if f.blogs[i].Slug == slug && f.blogs[i].IsPublished {
			b := f.blogs[i]
			return &b, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) UpdateBlog(_ context.Context, blogID uuid.UUID, upd models.UpdateBlogRequest) (*models.Blog, error) {
	for i := range f.blogs {
		if f.blogs[i].ID != blogID {
			continue
		}
		b := &f.blogs[i]
		if upd.Title != nil {
			b.Title = *upd.Title
		}
		if upd.Slug != nil {
			b.Slug = *upd.Slug
		}
		if upd.Content != nil {
			b.Content = *upd.Content
		}
		if upd.IsPublished != nil {
			b.IsPublished = *upd.IsPublished
		}
		b.UpdatedAt = time.Now()
		f.mutations++
		out := *b
		return &out, nil
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) DeleteBlog(_ context.Context, blogID uuid.UUID) error {
	for i := range f.blogs {
		if f.blogs[i].ID == blogID {
			f.blogs = append(f.blogs[:i], f.blogs[i+1:]...)
			f.mutations++
			return nil
		}
	}
	return database.ErrNotFound
}

func (f *fakeStore) CreateLead(_ context.Context, l models.Lead) (*models.Lead, error) {
	l.ID = uuid.New()
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	f.leads = append(f.leads, l)
	f.mutations++
	return &l, nil
}

func (f *fakeStore) ListLeads(_ context.Context) ([]models.Lead, error) {
	out := make([]models.Lead, 0, len(f.leads))
	for i := len(f.leads) - 1; i >= 0; i-- {
		out = append(out, f.leads[i])
	}
	return out, nil
}

func (f *fakeStore) UpdateLeadStatus(_ context.Context, leadID uuid.UUID, status string) (*models.Lead, error) {
	for i := range f.leads {
		if f.leads[i].ID == leadID {
			f.leads[i].Status = status
			f.leads[i].UpdatedAt = time.Now()
			f.mutations++
			l := f.leads[i]
			return &l, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) DeleteLead(_ context.Context, leadID uuid.UUID) error {
	for i := range f.leads {
		if f.leads[i].ID == leadID {
			f.leads = append(f.leads[:i], f.leads[i+1:]...)
			f.mutations++
			return nil
		}
	}
	return database.ErrNotFound
}

func (f *fakeStore) CreateUser(_ context.Context, username, passwordHash, role string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return nil, database.ErrDuplicate
		}
	}
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[user.ID] = user
	f.mutations++
	return user, nil
}

func (f *fakeStore) GetUser(_ context.Context, userID uuid.UUID) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return user, nil
}

func (f *fakeStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, database.ErrNotFound
}

// testEnv wires the full route table over fakes, mirroring main.
type testEnv struct {
	router *gin.Engine
	store  *fakeStore
	tokens *auth.TokenService
}

func newTestEnv(images imagestore.Store) *testEnv {
	gin.SetMode(gin.TestMode)
	store := newFakeStore()
	tokens := auth.NewTokenService("test-secret", time.Hour)

	authRequired := middleware.AuthRequired(store, tokens)
	adminRequired := middleware.AdminRequired()

	r := gin.New()
	r.GET("/health", HealthCheck)

	r.POST("/api/auth/register", Register(store))
	r.POST("/api/auth/login", Login(store, tokens))
	r.GET("/api/auth/me", authRequired, Me())

	r.GET("/api/projects", ListProjects(store))
	r.GET("/api/projects/:id", GetProject(store))
	r.POST("/api/projects", authRequired, adminRequired, CreateProject(store))
	r.PUT("/api/projects/:id", authRequired, adminRequired, UpdateProject(store))
	r.DELETE("/api/projects/:id", authRequired, adminRequired, DeleteProject(store))

	r.GET("/api/blogs", ListBlogs(store))
	r.GET("/api/blogs/all", authRequired, adminRequired, ListAllBlogs(store))
	r.GET("/api/blogs/:slug", GetBlog(store))
	r.POST("/api/blogs", authRequired, adminRequired, CreateBlog(store))
	r.PUT("/api/blogs/:id", authRequired, adminRequired, UpdateBlog(store))
	r.DELETE("/api/blogs/:id", authRequired, adminRequired, DeleteBlog(store))

	r.POST("/api/leads", CreateLead(store))
	r.GET("/api/leads", authRequired, adminRequired, ListLeads(store))
	r.PUT("/api/leads/:id", authRequired, adminRequired, UpdateLead(store))
	r.DELETE("/api/leads/:id", authRequired, adminRequired, DeleteLead(store))

	r.POST("/api/upload", authRequired, adminRequired, Upload(images))

	return &testEnv{router: r, store: store, tokens: tokens}
}

// adminToken seeds an admin account and returns a valid bearer token.
func (e *testEnv) adminToken() string {
	user := &models.User{
		ID:       uuid.New(),
		Username: "admin",
		Role:     models.RoleAdmin,
	}
	e.store.users[user.ID] = user
	token, _ := e.tokens.Generate(user.ID)
	return token
}

func (e *testEnv) userToken() string {
	user := &models.User{
		ID:       uuid.New(),
		Username: "regular",
		Role:     models.RoleUser,
	}
	e.store.users[user.ID] = user
	token, _ := e.tokens.Generate(user.ID)
	return token
}

func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
