package services

import (
	"fmt"
	"mime/multipart"
	"sync"

	"github.com/salem2025/sport-store-api/utils"
)

// MockImageService is an in-memory ImageService for tests
type MockImageService struct {
	images map[string]bool
	mu     sync.RWMutex

	// FailUpload forces UploadImage to return an error when set
	FailUpload bool
}

// NewMockImageService creates a new mock image service
func NewMockImageService() *MockImageService {
	return &MockImageService{images: make(map[string]bool)}
}

// SetAsMockForTesting sets this mock as the global image service instance
func (m *MockImageService) SetAsMockForTesting() {
	SetImageService(m)
}

// UploadImage validates the file and records a fake key
func (m *MockImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if m.FailUpload {
		return "", fmt.Errorf("simulated upload failure")
	}
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	key := fmt.Sprintf("products/mock_%s", fileHeader.Filename)
	m.mu.Lock()
	m.images[key] = true
	m.mu.Unlock()
	return key, nil
}

// GetImageURL returns a deterministic fake URL for any non-empty key
func (m *MockImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}
	return fmt.Sprintf("https://images.test/%s", imageKey), nil
}

// DeleteImage forgets a recorded key
func (m *MockImageService) DeleteImage(imageKey string) error {
	m.mu.Lock()
	delete(m.images, imageKey)
	m.mu.Unlock()
	return nil
}

// HasImage reports whether a key was uploaded (for test assertions)
func (m *MockImageService) HasImage(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.images[key]
}
