package storage

import (
	"context"
	"internistika-service/internal/app/config"
	"internistika-service/internal/pkg/exceptions"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	Expiry      time.Duration
}

func NewMinioStorage(minioClient *minio.Client, internalConfig *config.InternalConfig) Storage {
	return &minioStorage{
		MinioClient: minioClient,
		Expiry:      time.Duration(internalConfig.Minio.PresignedURLExpiryInMinutes) * time.Minute,
	}
}

func (m *minioStorage) PresignedUploadURL(ctx context.Context, bucketName, objectName string) (string, error) {
	presignedURL, err := m.MinioClient.PresignedPutObject(ctx, bucketName, objectName, m.Expiry)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, bucketName)
	}
	return presignedURL.String(), nil
}

func (m *minioStorage) PresignedDownloadURL(ctx context.Context, bucketName, objectName string) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, m.Expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, bucketName)
	}
	return presignedURL.String(), nil
}
