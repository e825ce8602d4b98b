package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/sirupsen/logrus"
)

// ImageService stores product main images. With a Cloudinary URL
// configured it uploads there and returns the secure URL; otherwise it
// writes the file into the local upload directory and returns the
// filename.
type ImageService struct {
	cld       *cloudinary.Cloudinary
	uploadDir string
	log       *logrus.Logger
}

func NewImageService(cloudinaryURL, uploadDir string, log *logrus.Logger) (*ImageService, error) {
	s := &ImageService{uploadDir: uploadDir, log: log}

	if cloudinaryURL != "" {
		cld, err := cloudinary.NewFromURL(cloudinaryURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
		}
		s.cld = cld
	}
	return s, nil
}

// StoreMainImage persists the uploaded file and returns the name or URL
// the storefront should reference it by.
func (s *ImageService) StoreMainImage(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", &StoreError{Op: "uploading image", Err: err}
	}
	defer file.Close()

	if s.cld != nil {
		return s.uploadToCloudinary(file, header.Filename)
	}
	return s.saveLocal(file, header.Filename)
}

func (s *ImageService) uploadToCloudinary(file multipart.File, filename string) (string, error) {
	truthy := true
	result, err := s.cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		PublicID:       strings.TrimSuffix(filename, filepath.Ext(filename)),
		Folder:         "main-images",
		UseFilename:    &truthy,
		UniqueFilename: &truthy,
		ResourceType:   "image",
	})
	if err != nil {
		s.log.WithError(err).Error("cloudinary upload failed")
		return "", &StoreError{Op: "uploading image", Err: err}
	}
	return result.SecureURL, nil
}

func (s *ImageService) saveLocal(file multipart.File, filename string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", &StoreError{Op: "uploading image", Err: err}
	}

	// strip any path the client sent along
	name := filepath.Base(filename)
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", &StoreError{Op: "uploading image", Err: err}
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", &StoreError{Op: "uploading image", Err: err}
	}
	return name, nil
}
