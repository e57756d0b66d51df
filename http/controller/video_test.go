package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davitran/clipshare/config"
	"github.com/davitran/clipshare/entity"
	"github.com/davitran/clipshare/infra"
	"github.com/davitran/clipshare/infra/produce"
)

type fakeProcessor struct {
	configured bool
	descriptor *infra.AssetDescriptor
	err        error
	calls      int
}

func (f *fakeProcessor) Configured() bool { return f.configured }

func (f *fakeProcessor) UploadVideo(_ context.Context, _ io.Reader) (*infra.AssetDescriptor, error) {
	f.calls++
	return f.descriptor, f.err
}

func (f *fakeProcessor) UploadImage(_ context.Context, _ io.Reader) (*infra.AssetDescriptor, error) {
	f.calls++
	return f.descriptor, f.err
}

type fakeStore struct {
	videos    []entity.Video
	created   []*entity.Video
	createErr error
	listErr   error
}

func (f *fakeStore) Create(video *entity.Video) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, video)
	return nil
}

func (f *fakeStore) FindAllNewestFirst() ([]entity.Video, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.videos == nil {
		return make([]entity.Video, 0), nil
	}
	return f.videos, nil
}

type fakePublisher struct {
	published []produce.AssetCreatedMessage
	err       error
}

func (f *fakePublisher) PublishAssetCreated(_ context.Context, msg produce.AssetCreatedMessage) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

func newTestConfig() *config.Config {
	env := &config.EnvConfig{}
	env.Upload.MaxVideoSize = 60 * 1024 * 1024
	return &config.Config{EnvConfig: env}
}

func newTestController(processor MediaProcessor, store VideoStore, events AssetEventPublisher) *Controller {
	return &Controller{
		Config:    newTestConfig(),
		Logger:    infra.NewNopLoggerClient(),
		Processor: processor,
		Videos:    store,
		Events:    events,
	}
}

func videoUploadBody(t *testing.T, fields map[string]string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileContent != nil {
		part, err := writer.CreateFormFile("file", "clip.mp4")
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func performUpload(ctrl *Controller, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/video-upload", ctrl.UploadVideo)

	req := httptest.NewRequest(http.MethodPost, "/api/video-upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadVideo_Success(t *testing.T) {
	processor := &fakeProcessor{
		configured: true,
		descriptor: &infra.AssetDescriptor{PublicID: "video-uploads/abc123", Bytes: 4096, Duration: 12.5},
	}
	store := &fakeStore{}
	events := &fakePublisher{}
	ctrl := newTestController(processor, store, events)

	body, contentType := videoUploadBody(t, map[string]string{
		"title":        "Beach day",
		"description":  "Sunset clip",
		"originalSize": "8192",
	}, []byte("fake video bytes"))

	w := performUpload(ctrl, body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.created, 1)

	saved := store.created[0]
	assert.Equal(t, "Beach day", saved.Title)
	assert.Equal(t, "Sunset clip", saved.Description)
	assert.Equal(t, "video-uploads/abc123", saved.PublicID)
	assert.Equal(t, int64(8192), saved.OriginalSize)
	assert.Equal(t, int64(4096), saved.CompressedSize)
	assert.Equal(t, 12.5, saved.Duration)
	assert.NotEqual(t, "", saved.ID.String())

	var resp entity.Video
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, saved.PublicID, resp.PublicID)
	assert.Equal(t, saved.ID, resp.ID)

	require.Len(t, events.published, 1)
	assert.Equal(t, saved.ID.String(), events.published[0].VideoID)
	assert.Equal(t, saved.PublicID, events.published[0].PublicID)
}

func TestUploadVideo_ProcessorNotConfigured(t *testing.T) {
	processor := &fakeProcessor{configured: false}
	store := &fakeStore{}
	ctrl := newTestController(processor, store, nil)

	body, contentType := videoUploadBody(t, map[string]string{"title": "x"}, []byte("data"))
	w := performUpload(ctrl, body, contentType)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "configuration is missing")
	assert.Equal(t, 0, processor.calls)
	assert.Empty(t, store.created)
}

func TestUploadVideo_MissingFile(t *testing.T) {
	processor := &fakeProcessor{configured: true}
	store := &fakeStore{}
	ctrl := newTestController(processor, store, nil)

	body, contentType := videoUploadBody(t, map[string]string{"title": "x"}, nil)
	w := performUpload(ctrl, body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File is required")
	assert.Equal(t, 0, processor.calls)
	assert.Empty(t, store.created)
}

func TestUploadVideo_MissingTitle(t *testing.T) {
	processor := &fakeProcessor{configured: true}
	ctrl := newTestController(processor, &fakeStore{}, nil)

	body, contentType := videoUploadBody(t, map[string]string{"description": "no title"}, []byte("data"))
	w := performUpload(ctrl, body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title is required")
	assert.Equal(t, 0, processor.calls)
}

func TestUploadVideo_FileTooLarge(t *testing.T) {
	processor := &fakeProcessor{configured: true}
	store := &fakeStore{}
	ctrl := newTestController(processor, store, nil)
	ctrl.Config.EnvConfig.Upload.MaxVideoSize = 8

	body, contentType := videoUploadBody(t, map[string]string{"title": "x"}, []byte("more than eight bytes"))
	w := performUpload(ctrl, body, contentType)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, 0, processor.calls)
	assert.Empty(t, store.created)
}

func TestUploadVideo_ProcessorFailure(t *testing.T) {
	processor := &fakeProcessor{configured: true, err: errors.New("upstream timeout")}
	store := &fakeStore{}
	ctrl := newTestController(processor, store, nil)

	body, contentType := videoUploadBody(t, map[string]string{"title": "x"}, []byte("data"))
	w := performUpload(ctrl, body, contentType)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Upload failed")
	assert.Empty(t, store.created)
}

func TestUploadVideo_MetadataCommitFailure(t *testing.T) {
	processor := &fakeProcessor{
		configured: true,
		descriptor: &infra.AssetDescriptor{PublicID: "video-uploads/abc123", Bytes: 10},
	}
	store := &fakeStore{createErr: errors.New("connection reset")}
	events := &fakePublisher{}
	ctrl := newTestController(processor, store, events)

	body, contentType := videoUploadBody(t, map[string]string{"title": "x"}, []byte("data"))
	w := performUpload(ctrl, body, contentType)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to save video metadata")
	assert.Empty(t, events.published)
}

func TestUploadVideo_InvalidOriginalSizeDegradesToZero(t *testing.T) {
	processor := &fakeProcessor{
		configured: true,
		descriptor: &infra.AssetDescriptor{PublicID: "video-uploads/abc123", Bytes: 10},
	}
	store := &fakeStore{}
	ctrl := newTestController(processor, store, nil)

	body, contentType := videoUploadBody(t, map[string]string{
		"title":        "x",
		"originalSize": "not-a-number",
	}, []byte("data"))
	w := performUpload(ctrl, body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, int64(0), store.created[0].OriginalSize)
}

func TestUploadVideo_PublishFailureDoesNotFailRequest(t *testing.T) {
	processor := &fakeProcessor{
		configured: true,
		descriptor: &infra.AssetDescriptor{PublicID: "video-uploads/abc123", Bytes: 10},
	}
	store := &fakeStore{}
	events := &fakePublisher{err: errors.New("broker unavailable")}
	ctrl := newTestController(processor, store, events)

	body, contentType := videoUploadBody(t, map[string]string{"title": "x"}, []byte("data"))
	w := performUpload(ctrl, body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.created, 1)
}

func listVideos(ctrl *Controller) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/videos", ctrl.ListVideos)

	req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListVideos_EmptyStoreReturnsEmptyArray(t *testing.T) {
	ctrl := newTestController(&fakeProcessor{}, &fakeStore{}, nil)

	w := listVideos(ctrl)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListVideos(t *testing.T) {
	store := &fakeStore{videos: []entity.Video{
		{Title: "newest"},
		{Title: "oldest"},
	}}
	ctrl := newTestController(&fakeProcessor{}, store, nil)

	w := listVideos(ctrl)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []entity.Video
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "newest", resp[0].Title)
	assert.Equal(t, "oldest", resp[1].Title)
}

func TestListVideos_StoreFailure(t *testing.T) {
	store := &fakeStore{listErr: errors.New("connection refused")}
	ctrl := newTestController(&fakeProcessor{}, store, nil)

	w := listVideos(ctrl)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch videos")
}
