package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/davitran/clipshare/entity"
	"github.com/davitran/clipshare/http/controller/dto"
	"github.com/davitran/clipshare/infra/produce"
)

// UploadVideo ingests one video: multipart form in, processor upload, one
// metadata row out. The row is written only after the processor reports
// success, so readers never observe a partial asset.
func (ctrl *Controller) UploadVideo(c *gin.Context) {
	ctx := c.Request.Context()

	if !ctrl.Processor.Configured() {
		ctrl.Logger.ErrorWithContextf(ctx, nil, "[Video] Upload rejected: media processor configuration is missing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Media processor configuration is missing"})
		return
	}

	var req dto.UploadVideoRequestDTO
	if err := c.ShouldBind(&req); err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Video] Failed to bind upload form: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		ctrl.Logger.WarningWithContextf(ctx, "[Video] Upload rejected: no file attached")
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	if req.Title == "" {
		ctrl.Logger.WarningWithContextf(ctx, "[Video] Upload rejected: no title")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	maxSize := ctrl.Config.EnvConfig.Upload.MaxVideoSize
	if fileHeader.Size > maxSize {
		ctrl.Logger.WarningWithContextf(ctx, "[Video] Upload rejected: file size %d exceeds limit %d", fileHeader.Size, maxSize)
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds the maximum upload size"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Video] Failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	ctrl.Logger.InfoWithContextf(ctx, "[Video] Uploading '%s' (%d bytes) to media processor", fileHeader.Filename, fileHeader.Size)

	descriptor, err := ctrl.Processor.UploadVideo(ctx, file)
	if err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Video] Processor upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	// Client-reported, kept for display only; invalid input degrades to 0.
	originalSize, _ := strconv.ParseInt(req.OriginalSize, 10, 64)

	video := &entity.Video{
		ID:             uuid.New(),
		Title:          req.Title,
		Description:    req.Description,
		PublicID:       descriptor.PublicID,
		OriginalSize:   originalSize,
		CompressedSize: descriptor.Bytes,
		Duration:       descriptor.Duration,
	}

	if err := ctrl.Videos.Create(video); err != nil {
		// The processed asset is orphaned at this point; keep its reference
		// in the log so a reconciliation pass can find it.
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Video] Metadata commit failed, remote asset %s orphaned: %v", descriptor.PublicID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save video metadata"})
		return
	}

	if ctrl.Events != nil {
		msg := produce.AssetCreatedMessage{
			VideoID:        video.ID.String(),
			PublicID:       video.PublicID,
			Title:          video.Title,
			OriginalSize:   video.OriginalSize,
			CompressedSize: video.CompressedSize,
			Duration:       video.Duration,
		}
		if err := ctrl.Events.PublishAssetCreated(ctx, msg); err != nil {
			ctrl.Logger.WarningWithContextf(ctx, "[Video] Failed to publish asset created event for %s: %v", video.ID, err)
		}
	}

	ctrl.Logger.InfoWithContextf(ctx, "[Video] Created video %s (public id %s)", video.ID, video.PublicID)
	c.JSON(http.StatusOK, video)
}

// ListVideos returns every video newest-first. Public, unauthenticated.
func (ctrl *Controller) ListVideos(c *gin.Context) {
	ctx := c.Request.Context()

	videos, err := ctrl.Videos.FindAllNewestFirst()
	if err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Video] Failed to list videos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}

	c.JSON(http.StatusOK, videos)
}
