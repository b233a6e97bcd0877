package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ecommerce-store/pkg/utils"
)

type localUploader struct {
	dir       string
	urlPrefix string
}

// NewLocalUploader ensures the uploads directory exists up front.
func NewLocalUploader(dir, urlPrefix string) (Uploader, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &localUploader{dir: dir, urlPrefix: urlPrefix}, nil
}

func (u *localUploader) Save(ctx context.Context, originalName, contentType string, content io.Reader) (string, error) {
	name := utils.GenerateUploadName(originalName)

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return u.urlPrefix + name, nil
}
