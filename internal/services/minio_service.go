package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"streaming-catalog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOService stores content poster images. Uploads go directly from the
// admin frontend to the bucket via presigned PUT URLs.
type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure poster bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Poster bucket created")
	}

	// Posters are served straight from the bucket, so reads must be public.
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return nil
}

// PresignPosterUpload returns a short-lived PUT URL for uploading a poster
// plus the public URL the poster will be reachable at afterwards. The object
// name gets a random suffix so re-uploads never collide.
func (s *MinIOService) PresignPosterUpload(filename string) (string, string, error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	objectName := fmt.Sprintf("%s_%s%s", base, uuid.New().String()[:8], ext)

	expiry := 15 * time.Minute
	presignedURL, err := s.client.PresignedPutObject(context.Background(), s.bucket, objectName, expiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned poster URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := fmt.Sprintf("%s/%s", strings.TrimSuffix(s.publicURL, "/"), objectName)

	s.logger.WithFields(logrus.Fields{
		"filename": filename,
		"object":   objectName,
		"expiry":   expiry,
	}).Info("Generated presigned poster upload URL")

	return presignedURL.String(), publicURL, nil
}

// DeleteFile removes a poster object. Accepts either a bare object name or a
// full URL pointing into the bucket.
func (s *MinIOService) DeleteFile(objectName string) error {
	if strings.Contains(objectName, "http") {
		parts := strings.Split(objectName, "/")
		objectName = parts[len(parts)-1]
	}
	objectName = strings.TrimPrefix(objectName, s.bucket+"/")

	err := s.client.RemoveObject(context.Background(), s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("object", objectName).Error("Failed to delete poster")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("object", objectName).Info("Poster deleted from MinIO")
	return nil
}
