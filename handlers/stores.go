package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"vantage/database"
	"vantage/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Store interfaces are defined here, on the consumer side; *database.DB
// satisfies all of them. Handlers never touch the pool directly.

type ProjectStore interface {
	CreateProject(ctx context.Context, p models.Project) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, upd models.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
}

type BlogStore interface {
	CreateBlog(ctx context.Context, b models.Blog) (*models.Blog, error)
	ListBlogs(ctx context.Context, publishedOnly bool) ([]models.Blog, error)
	GetBlog(ctx context.Context, blogID uuid.UUID) (*models.Blog, error)
	GetPublishedBlogBySlug(ctx context.Context, slug string) (*models.Blog, error)
	UpdateBlog(ctx context.Context, blogID uuid.UUID, upd models.UpdateBlogRequest) (*models.Blog, error)
	DeleteBlog(ctx context.Context, blogID uuid.UUID) error
}

type LeadStore interface {
	CreateLead(ctx context.Context, l models.Lead) (*models.Lead, error)
	ListLeads(ctx context.Context) ([]models.Lead, error)
	UpdateLeadStatus(ctx context.Context, leadID uuid.UUID, status string) (*models.Lead, error)
	DeleteLead(ctx context.Context, leadID uuid.UUID) error
}

type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash, role string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// respondStoreError maps store failures onto the error taxonomy: missing
// records are 404, unique-key violations are 400, anything else is an
// opaque 500. Internal detail is logged, never sent to the client.
func respondStoreError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": resource + " not found"})
	case errors.Is(err, database.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"message": resource + " already exists"})
	default:
		log.Printf("%s store error: %v", resource, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

// parseID extracts and validates the :id path parameter. Responds 400 and
// returns false when it is not a UUID.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
