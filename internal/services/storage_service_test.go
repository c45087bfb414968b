// internal/services/storage_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m-sowraj/alkarahm-admin/internal/config"
)

func newTestStorage() *StorageService {
	return &StorageService{
		config: &config.Config{
			AWS: config.AWSConfig{
				Region:   "me-south-1",
				S3Bucket: "alkarahm-store-assets",
			},
		},
	}
}

func TestNewStorageService(t *testing.T) {
	// Without credentials the service comes up S3-less for local development
	local, err := NewStorageService(&config.Config{})
	assert.NoError(t, err)
	assert.NotNil(t, local)
	assert.Nil(t, local.s3Client)

	// With credentials the client is wired
	s, err := NewStorageService(&config.Config{
		AWS: config.AWSConfig{
			Region:          "me-south-1",
			AccessKeyID:     "AKIATEST",
			SecretAccessKey: "secret",
			S3Bucket:        "alkarahm-store-assets",
		},
	})
	assert.NoError(t, err)
	assert.NotNil(t, s.s3Client)
}

func TestGenerateFileName(t *testing.T) {
	s := newTestStorage()

	name := s.generateFileName("photo.JPG", "products")
	assert.True(t, strings.HasPrefix(name, "products/"))
	assert.True(t, strings.HasSuffix(name, ".JPG"))

	bare := s.generateFileName("photo.png", "")
	assert.False(t, strings.Contains(bare, "/"))

	// Names are unique per call
	assert.NotEqual(t, s.generateFileName("a.png", "x"), s.generateFileName("a.png", "x"))
}

func TestGetS3URL(t *testing.T) {
	s := newTestStorage()
	assert.Equal(t,
		"https://alkarahm-store-assets.s3.me-south-1.amazonaws.com/products/a.png",
		s.getS3URL("products/a.png"))

	s.config.AWS.CloudFrontURL = "https://cdn.alkarahm.com"
	assert.Equal(t, "https://cdn.alkarahm.com/products/a.png", s.getS3URL("products/a.png"))
}

func TestIsValidImageType(t *testing.T) {
	s := newTestStorage()

	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gif := []byte("GIF89a......")
	webp := []byte("RIFF....WEBP")

	assert.True(t, s.isValidImageType(jpeg))
	assert.True(t, s.isValidImageType(png))
	assert.True(t, s.isValidImageType(gif))
	assert.True(t, s.isValidImageType(webp))

	assert.False(t, s.isValidImageType([]byte("%PDF-1.7")))
	assert.False(t, s.isValidImageType([]byte{}))
}

func TestGetDefaultUploadOptions(t *testing.T) {
	s := newTestStorage()

	products := s.GetDefaultUploadOptions("products")
	assert.Equal(t, "products", products.Folder)
	assert.Contains(t, products.AllowedTypes, ".webp")

	fallback := s.GetDefaultUploadOptions("unknown")
	assert.Equal(t, "general", fallback.Folder)
}
