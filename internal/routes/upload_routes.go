package routes

import (
	"github.com/go-chi/chi/v5"

	"bandstand/internal/config"
	"bandstand/internal/handlers"
)

func RegisterUploadRoutes(r chi.Router, s3Config *config.S3Config) {
	handler := handlers.NewUploadHandler(s3Config)

	r.Post("/uploads/image", handler.UploadImage)
}
