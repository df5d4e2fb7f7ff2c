package handlers

import (
	"errors"
	"log"
	"net/http"
	"vantage/imagestore"

	"github.com/gin-gonic/gin"
)

// Upload relays one multipart file (field "image") to the configured image
// host and returns the hosted URL. A nil store means hosting is not
// configured; the route answers 503 instead of failing at startup.
func Upload(store imagestore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "image hosting not configured"})
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "image file required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "failed to read image"})
			return
		}
		defer file.Close()

		ctx := c.Request.Context()
		url, err := store.Upload(ctx, file, fileHeader.Filename)
		if err != nil {
			if errors.Is(err, imagestore.ErrUnsupportedFormat) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "unsupported image format"})
				return
			}
			log.Printf("Upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
