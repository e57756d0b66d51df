package infra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/davitran/clipshare/config"
)

const (
	videoFolder = "video-uploads"
	imageFolder = "image-uploads"
)

// ErrNotConfigured is returned when an upload is attempted without a complete
// set of Cloudinary credentials. It is checked before any network call.
var ErrNotConfigured = errors.New("cloudinary credentials are not configured")

// AssetDescriptor is the narrowed result of a processor upload. PublicID and
// Bytes are authoritative values reported by Cloudinary; Duration is 0 for
// non-time-based media.
type AssetDescriptor struct {
	PublicID string
	Bytes    int64
	Duration float64
}

type CloudinaryClient struct {
	cld *cloudinary.Cloudinary
}

// InitCloudinaryClient builds the media processor client. Missing credentials
// do not fail startup: the client is constructed unconfigured and every
// upload returns ErrNotConfigured until the operator supplies them.
func InitCloudinaryClient(cfg *config.EnvConfig) *CloudinaryClient {
	c := cfg.Cloudinary
	if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
		log.Println("Warning: Cloudinary credentials missing, uploads will be rejected")
		return &CloudinaryClient{}
	}

	cld, err := cloudinary.NewFromParams(c.CloudName, c.APIKey, c.APISecret)
	if err != nil {
		log.Printf("Warning: Cloudinary client init failed: %v (uploads will be rejected)", err)
		return &CloudinaryClient{}
	}

	return &CloudinaryClient{cld: cld}
}

// Configured reports whether a complete credential set was supplied.
func (c *CloudinaryClient) Configured() bool {
	return c.cld != nil
}

// UploadVideo streams a video to Cloudinary with automatic quality and format
// selection and returns the processed-asset descriptor.
func (c *CloudinaryClient) UploadVideo(ctx context.Context, file io.Reader) (*AssetDescriptor, error) {
	if c.cld == nil {
		return nil, ErrNotConfigured
	}

	result, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		ResourceType:   "video",
		Folder:         videoFolder,
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary video upload failed: %w", err)
	}

	return descriptorFromResult(result)
}

// UploadImage streams an image to Cloudinary with default processing.
func (c *CloudinaryClient) UploadImage(ctx context.Context, file io.Reader) (*AssetDescriptor, error) {
	if c.cld == nil {
		return nil, ErrNotConfigured
	}

	result, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: imageFolder,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary image upload failed: %w", err)
	}

	return descriptorFromResult(result)
}

// descriptorFromResult validates the upstream response immediately instead of
// letting an incomplete result propagate.
func descriptorFromResult(result *uploader.UploadResult) (*AssetDescriptor, error) {
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary rejected upload: %s", result.Error.Message)
	}
	if result.PublicID == "" {
		return nil, errors.New("cloudinary response missing public_id")
	}
	if result.Bytes <= 0 {
		return nil, errors.New("cloudinary response missing byte size")
	}

	return &AssetDescriptor{
		PublicID: result.PublicID,
		Bytes:    int64(result.Bytes),
		Duration: result.Duration,
	}, nil
}
