package controller

import (
	"context"
	"io"

	"github.com/davitran/clipshare/config"
	"github.com/davitran/clipshare/entity"
	"github.com/davitran/clipshare/infra"
	"github.com/davitran/clipshare/infra/produce"
	"github.com/davitran/clipshare/repository"
)

// MediaProcessor is the external processor the ingestion pipeline hands
// uploads to. Implemented by infra.CloudinaryClient; faked in tests.
type MediaProcessor interface {
	// Configured reports whether the processor has a complete credential set.
	// Checked before any network call so misconfiguration surfaces as a
	// configuration error rather than an upstream one.
	Configured() bool
	UploadVideo(ctx context.Context, file io.Reader) (*infra.AssetDescriptor, error)
	UploadImage(ctx context.Context, file io.Reader) (*infra.AssetDescriptor, error)
}

// VideoStore is the metadata persistence the handlers need.
type VideoStore interface {
	Create(video *entity.Video) error
	FindAllNewestFirst() ([]entity.Video, error)
}

// AssetEventPublisher announces committed assets downstream. Best-effort.
type AssetEventPublisher interface {
	PublishAssetCreated(ctx context.Context, msg produce.AssetCreatedMessage) error
}

type Controller struct {
	Config    *config.Config
	Logger    *infra.LoggerClient
	Identity  *infra.AuthorizationService
	Processor MediaProcessor
	Videos    VideoStore
	Events    AssetEventPublisher // nil when no broker is configured
}

func NewController(cfg *config.Config, inf *infra.Infra, repo *repository.Repository) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}

	ctrl := &Controller{
		Config:    cfg,
		Logger:    inf.Logger,
		Identity:  inf.AuthorizationService,
		Processor: inf.Cloudinary,
		Videos:    repo.VideoRepo,
	}
	if inf.Produce != nil {
		ctrl.Events = inf.Produce.MediaEvents
	}
	return ctrl
}
