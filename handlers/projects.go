package handlers

import (
	"net/http"
	"vantage/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateProject(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		project, err := store.CreateProject(ctx, req.Project())
		if err != nil {
			respondStoreError(c, err, "project")
			return
		}

		c.JSON(http.StatusCreated, project)
	}
}

func ListProjects(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		projects, err := store.ListProjects(ctx)
		if err != nil {
			respondStoreError(c, err, "project")
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

// GetProject serves a single project by id or, when the path value is not
// a UUID, by slug.
func GetProject(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("id")
		ctx := c.Request.Context()

		var (
			project *models.Project
			err     error
		)
		if id, parseErr := uuid.Parse(key); parseErr == nil {
			project, err = store.GetProject(ctx, id)
		} else {
			project, err = store.GetProjectBySlug(ctx, key)
		}
		if err != nil {
			respondStoreError(c, err, "project")
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

func UpdateProject(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var req models.UpdateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		project, err := store.UpdateProject(ctx, id, req)
		if err != nil {
			respondStoreError(c, err, "project")
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

func DeleteProject(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		if err := store.DeleteProject(ctx, id); err != nil {
			respondStoreError(c, err, "project")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
	}
}
