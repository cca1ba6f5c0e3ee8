package handlers

import (
	"bytes"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/plasmadinah/cms-backend/internal/httpx"
	"github.com/plasmadinah/cms-backend/internal/storage"
)

// saveUploadedImage stores the optional "image" form file in object storage
// and returns its key. Returns an empty key when no file was sent; replies
// with an error response (and returns it) when the upload is unusable.
func saveUploadedImage(c *fiber.Ctx, s3 *storage.S3Storage, prefix string) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No file attached.
		return "", nil
	}

	if s3 == nil {
		return "", httpx.Error(c, fiber.StatusServiceUnavailable, "storage_not_configured", "Storage not configured")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", httpx.BadRequest(c, "invalid_image", "Could not read uploaded file")
	}
	defer file.Close()

	data, contentType, size, err := storage.ProcessUploadImage(file, storage.DefaultCoverOptions())
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrTooLarge):
			return "", httpx.BadRequest(c, "image_too_large", "Image exceeds the size limit")
		case errors.Is(err, storage.ErrUnsupported), errors.Is(err, storage.ErrInvalidImage):
			return "", httpx.BadRequest(c, "invalid_image", "Unsupported or corrupt image")
		default:
			log.Printf("Error processing upload: %v", err)
			return "", httpx.Internal(c, "image_processing_failed")
		}
	}

	key := prefix + "/" + uuid.NewString() + ".jpg"
	if _, err := s3.PutObject(c.Context(), key, bytes.NewReader(data), size, contentType); err != nil {
		log.Printf("Error storing upload %s: %v", key, err)
		return "", httpx.Internal(c, "image_store_failed")
	}

	return key, nil
}
