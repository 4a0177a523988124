package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"

	apperrors "eventadmin/internal/errors"
	"eventadmin/internal/model"
	"eventadmin/internal/repository"
	"eventadmin/internal/storage"
)

// ImageService uploads images to the object store and serves them back.
type ImageService interface {
	Upload(ctx context.Context, ownerID uint, mimeType string, body io.Reader) (string, error)
	Open(ctx context.Context, id string) (mimeType string, stream io.ReadCloser, err error)
}

type imageService struct {
	images repository.ImageRepository
	store  storage.ObjectStore
}

// NewImageService creates a new image service.
func NewImageService(images repository.ImageRepository, store storage.ObjectStore) ImageService {
	return &imageService{
		images: images,
		store:  store,
	}
}

// newImageID returns an 8-byte random id in hex, the storage address of the
// uploaded object.
func newImageID() (string, error) {
	raw := make([]byte, 8)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate image id: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// Upload streams the body to the object store, then records the metadata row.
func (s *imageService) Upload(ctx context.Context, ownerID uint, mimeType string, body io.Reader) (string, error) {
	id, err := newImageID()
	if err != nil {
		return "", err
	}

	if err := s.store.Put(id, body); err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	image := &model.Image{
		ID:       id,
		MimeType: mimeType,
		OwnerID:  ownerID,
	}
	if err := s.images.Create(ctx, image); err != nil {
		return "", fmt.Errorf("record image metadata: %w", err)
	}
	return id, nil
}

// Open returns the stored mime type and a stream of the image bytes.
func (s *imageService) Open(ctx context.Context, id string) (string, io.ReadCloser, error) {
	image, err := s.images.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return "", nil, apperrors.ErrImageNotFound
		}
		return "", nil, fmt.Errorf("load image metadata: %w", err)
	}

	stream, err := s.store.Get(id)
	if err != nil {
		return "", nil, err
	}
	return image.MimeType, stream, nil
}

// isNotFound translates a gorm miss, wrapped or not.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
