package storage

import (
	"context"
)

// Storage hands out presigned URLs; the service itself never proxies media
// bytes.
type Storage interface {
	PresignedUploadURL(ctx context.Context, bucketName, objectName string) (string, error)
	PresignedDownloadURL(ctx context.Context, bucketName, objectName string) (string, error)
}
