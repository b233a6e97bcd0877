// Package storage turns inbound product images into stored files referenced
// by URL. Two backends: local disk and S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"

	"ecommerce-store/pkg/utils"
)

type Uploader interface {
	// Save stores the content under a generated name and returns the URL
	// the product record should reference.
	Save(ctx context.Context, originalName, contentType string, content io.Reader) (string, error)
}

// NewUploader picks the backend from config.
func NewUploader(config utils.UploadConfig) (Uploader, error) {
	switch config.Backend {
	case "local", "":
		return NewLocalUploader(config.Dir, config.URLPrefix)
	case "s3":
		return NewS3Uploader(config.S3)
	default:
		return nil, fmt.Errorf("unknown upload backend %q", config.Backend)
	}
}
