package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadImage ingests one image and returns the processor's public id. No
// metadata row is written for images; the frontend derives crop URLs from
// the public id directly.
func (ctrl *Controller) UploadImage(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetString("user_id")
	if userID == "" {
		ctrl.Logger.WarningWithContextf(ctx, "[Image] Upload rejected: no authenticated user")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if !ctrl.Processor.Configured() {
		ctrl.Logger.ErrorWithContextf(ctx, nil, "[Image] Upload rejected: media processor configuration is missing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Media processor configuration is missing"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		ctrl.Logger.WarningWithContextf(ctx, "[Image] Upload rejected: no file attached")
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Image] Failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	ctrl.Logger.InfoWithContextf(ctx, "[Image] Uploading '%s' (%d bytes) for user %s", fileHeader.Filename, fileHeader.Size, userID)

	descriptor, err := ctrl.Processor.UploadImage(ctx, file)
	if err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Image] Processor upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"publicId": descriptor.PublicID})
}
