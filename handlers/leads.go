package handlers

import (
	"net/http"
	"vantage/models"

	"github.com/gin-gonic/gin"
)

// CreateLead is public: it backs the contact and booking forms. Duplicate
// submissions from the same email are expected and allowed.
func CreateLead(store LeadStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateLeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		lead, err := store.CreateLead(ctx, req.Lead())
		if err != nil {
			respondStoreError(c, err, "lead")
			return
		}

		c.JSON(http.StatusCreated, lead)
	}
}

func ListLeads(store LeadStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		leads, err := store.ListLeads(ctx)
		if err != nil {
			respondStoreError(c, err, "lead")
			return
		}

		c.JSON(http.StatusOK, leads)
	}
}

// UpdateLead mutates status and nothing else; any other field in the
// payload is ignored at bind time.
func UpdateLead(store LeadStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var req models.UpdateLeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if !models.IsValidLeadStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid lead status"})
			return
		}

		ctx := c.Request.Context()
		lead, err := store.UpdateLeadStatus(ctx, id, req.Status)
		if err != nil {
			respondStoreError(c, err, "lead")
			return
		}

		c.JSON(http.StatusOK, lead)
	}
}

func DeleteLead(store LeadStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		if err := store.DeleteLead(ctx, id); err != nil {
			respondStoreError(c, err, "lead")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "lead deleted"})
	}
}
