package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/Yao1yuan/Tastegent/internal/storage"
)

// Uploaded images are bounded to this box, aspect ratio preserved.
const (
	maxWidth    = 1920
	maxHeight   = 1080
	jpegQuality = 85
)

// ErrNotImage is returned before any storage side effect when the
// request body is not an image.
var ErrNotImage = errors.New("only images are allowed")

type Service struct {
	storage storage.Storage
}

func NewService(store storage.Storage) *Service {
	return &Service{storage: store}
}

// Process validates, resizes and re-encodes one uploaded image, then
// stores it under a random filename and returns the servable URL.
func (s *Service) Process(ctx context.Context, contentType string, file io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	filename := uuid.New().String() + ".jpg"

	url, err := s.storage.Save(ctx, filename, buf.Bytes(), "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	return url, nil
}
