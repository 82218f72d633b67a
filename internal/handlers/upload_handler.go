package handlers

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"bandstand/internal/config"
)

var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

type UploadHandler struct {
	s3Client      *s3.Client
	bucket        string
	publicBaseURL string
}

func NewUploadHandler(s3Config *config.S3Config) *UploadHandler {
	return &UploadHandler{
		s3Client:      s3Config.Client,
		bucket:        s3Config.Bucket,
		publicBaseURL: s3Config.PublicBaseURL,
	}
}

// UploadImage stores an uploaded image in S3 and returns the public link,
// ready to be submitted as a venue or artist image_link field.
// @Tags Uploads
// @Summary Upload an image
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/uploads/image [post]
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 32 << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := allowedImageExts[ext]
	if !ok {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "unsupported image type")
		return
	}

	if h.s3Client == nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "uploads not configured")
		return
	}

	key := "images/" + uuid.New().String() + ext
	uploader := manager.NewUploader(h.s3Client)
	_, err = uploader.Upload(r.Context(), &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("Failed to upload %s: %v", key, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to store image")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"image_link": h.publicBaseURL + "/" + key,
	})
}
