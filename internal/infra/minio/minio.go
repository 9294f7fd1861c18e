package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"match-go/internal/config"
	"match-go/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

var client *minio.Client

// Init 初始化 MinIO 客户端并确保照片 Bucket 存在
func Init(cfg *config.MinIOConfig) error {
	var err error
	client, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.PhotoBucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", cfg.PhotoBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.PhotoBucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.PhotoBucket, err)
		}
		logger.Info("MinIO bucket created", zap.String("bucket", cfg.PhotoBucket))
	}

	// 照片 Bucket 公开读，前端直接引用 URL
	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, cfg.PhotoBucket)
	if err := client.SetBucketPolicy(ctx, cfg.PhotoBucket, policy); err != nil {
		return fmt.Errorf("failed to set public policy for %s: %w", cfg.PhotoBucket, err)
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.PhotoBucket),
	)

	return nil
}

// Get 获取 MinIO 客户端实例
func Get() *minio.Client {
	return client
}

// PhotoStorage 照片对象存储适配器，实现 service.PhotoStorage
type PhotoStorage struct {
	bucket   string
	endpoint string
	useSSL   bool
}

// NewPhotoStorage 基于全局 MinIO 客户端创建照片存储适配器
func NewPhotoStorage(cfg *config.MinIOConfig) *PhotoStorage {
	return &PhotoStorage{
		bucket:   cfg.PhotoBucket,
		endpoint: cfg.Endpoint,
		useSSL:   cfg.UseSSL,
	}
}

// Upload 上传照片并返回公开访问 URL
func (s *PhotoStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}
	return s.publicURL(objectName), nil
}

// Remove 按对象名删除照片。对象不存在时 MinIO 视为成功，删除天然幂等
func (s *PhotoStorage) Remove(ctx context.Context, objectName string) error {
	if err := client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove from minio: %w", err)
	}
	return nil
}

func (s *PhotoStorage) publicURL(objectName string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName)
}
