package services

import (
	"fmt"
	"mime/multipart"
	"path"

	"github.com/salem2025/sport-store-api/models"
	"github.com/salem2025/sport-store-api/utils"
)

// ImageService handles product image upload, URL resolution and deletion
type ImageService interface {
	// UploadImage validates and stores an image file, returns the storage key
	UploadImage(fileHeader *multipart.FileHeader) (string, error)

	// GetImageURL generates a URL for accessing a stored image
	GetImageURL(imageKey string) (string, error)

	// DeleteImage removes an image from storage
	DeleteImage(imageKey string) error
}

var imageServiceInstance ImageService

// InitImageService initializes the image service with the S3 backend
func InitImageService(s3Service S3Interface) ImageService {
	imageServiceInstance = &S3ImageService{s3Service: s3Service}
	return imageServiceInstance
}

// InitLocalImageService initializes the image service with local-disk
// storage. Used in development when no S3 bucket is configured; files are
// served from the /uploads static route.
func InitLocalImageService(uploadDir string) ImageService {
	imageServiceInstance = &LocalImageService{uploadDir: uploadDir}
	return imageServiceInstance
}

// GetImageService returns the initialized image service instance
func GetImageService() ImageService {
	return imageServiceInstance
}

// SetImageService sets the image service instance (primarily for testing)
func SetImageService(service ImageService) {
	imageServiceInstance = service
}

// ResolveProductImageURL fills the product's computed ImageURL field from
// its stored image key. A missing image service or key leaves it unset.
func ResolveProductImageURL(p *models.Product) {
	if p == nil || p.ImageKey == nil || *p.ImageKey == "" {
		return
	}
	svc := GetImageService()
	if svc == nil {
		return
	}
	url, err := svc.GetImageURL(*p.ImageKey)
	if err != nil || url == "" {
		return
	}
	p.ImageURL = &url
}

// S3ImageService implements ImageService using AWS S3 for storage
type S3ImageService struct {
	s3Service S3Interface
}

// UploadImage validates and uploads an image file to S3
func (s *S3ImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	key, err := s.s3Service.UploadFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return key, nil
}

// GetImageURL generates a presigned URL for accessing an image
func (s *S3ImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}

	url, err := s.s3Service.GetPresignedURL(imageKey)
	if err != nil {
		return "", fmt.Errorf("failed to generate image URL: %w", err)
	}

	return url, nil
}

// DeleteImage deletes an image from S3
func (s *S3ImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	if err := s.s3Service.DeleteFile(imageKey); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

// LocalImageService implements ImageService on the local filesystem
type LocalImageService struct {
	uploadDir string
}

// UploadImage validates and saves an image file under the upload directory
func (s *LocalImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	filename, err := utils.SaveUploadedFile(fileHeader, s.uploadDir)
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return filename, nil
}

// GetImageURL returns the static route path for a locally stored image
func (s *LocalImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}
	return path.Join("/uploads", imageKey), nil
}

// DeleteImage removes a locally stored image
func (s *LocalImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}
	return utils.RemoveUploadedFile(imageKey, s.uploadDir)
}
