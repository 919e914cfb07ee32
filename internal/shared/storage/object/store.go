package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for archiving and retrieving audit artifacts.
type ObjectStore interface {
	Save(ctx context.Context, siteURL string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
