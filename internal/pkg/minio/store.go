package minio

import (
	"Campus/internal/api/config"
	"Campus/internal/model"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Store 以对象名作为 fileId 的图床实现
type Store struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// BulkDelete 一次请求批量删除，汇总所有失败对象
func (s *Store) BulkDelete(ctx context.Context, fileIDs []string) error {
	objectsCh := make(chan minio.ObjectInfo, len(fileIDs))
	for _, id := range fileIDs {
		objectsCh <- minio.ObjectInfo{Key: id}
	}
	close(objectsCh)

	var errs []error
	for rErr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("remove %s: %w", rErr.ObjectName, rErr.Err))
	}
	return errors.Join(errs...)
}

// Upload 上传文件，返回公开访问地址
func (s *Store) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*model.AssetReference, error) {
	info, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &model.AssetReference{
		FileID: info.Key,
		URL:    s.PublicURL(info.Key),
	}, nil
}

// PublicURL 对外访问地址
func (s *Store) PublicURL(objectName string) string {
	return s.baseURL + "/" + strings.TrimPrefix(objectName, "/")
}

func publicBaseURL(cfg config.MinIOConfig) string {
	endpoint := strings.TrimSuffix(cfg.ExternalEndpoint, "/")
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}
	return endpoint + "/" + cfg.Bucket
}
