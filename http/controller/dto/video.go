package dto

// UploadVideoRequestDTO carries the multipart form fields accompanying a
// video upload. The file itself is read from the file part. OriginalSize is
// client-reported and advisory only.
type UploadVideoRequestDTO struct {
	Title        string `form:"title"`
	Description  string `form:"description"`
	OriginalSize string `form:"originalSize"`
}
