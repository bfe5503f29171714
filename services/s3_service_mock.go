package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"sync"
)

// MockS3Service is an in-memory stand-in for the S3 backend in tests
type MockS3Service struct {
	uploadedFiles map[string][]byte // object key -> content
	mu            sync.RWMutex
}

// NewMockS3Service creates a new mock S3 service
func NewMockS3Service() *MockS3Service {
	return &MockS3Service{
		uploadedFiles: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global S3 service instance
func (m *MockS3Service) SetAsMockForTesting() {
	SetS3Service(m)
}

// UploadFile simulates uploading a product image
func (m *MockS3Service) UploadFile(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	key := fmt.Sprintf("products/mock_%s", fileHeader.Filename)

	m.mu.Lock()
	m.uploadedFiles[key] = content
	m.mu.Unlock()

	return key, nil
}

// GetPresignedURL returns a deterministic fake URL for a stored key
func (m *MockS3Service) GetPresignedURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}

	m.mu.RLock()
	_, exists := m.uploadedFiles[key]
	m.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("file not found in mock S3: %s", key)
	}

	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s?mock=true", key), nil
}

// DeleteFile removes a stored key
func (m *MockS3Service) DeleteFile(key string) error {
	if key == "" {
		return nil
	}

	m.mu.Lock()
	delete(m.uploadedFiles, key)
	m.mu.Unlock()

	return nil
}

// FileExists checks if a key exists in mock storage
func (m *MockS3Service) FileExists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.uploadedFiles[key]
	return exists
}

// Clear removes all stored files
func (m *MockS3Service) Clear() {
	m.mu.Lock()
	m.uploadedFiles = make(map[string][]byte)
	m.mu.Unlock()
}
