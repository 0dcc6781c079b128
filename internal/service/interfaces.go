package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"Campus/internal/model"
	"context"
	"io"
)

// AssetStore 外部图床
type AssetStore interface {
	// BulkDelete 批量删除，可能部分失败
	BulkDelete(ctx context.Context, fileIDs []string) error
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*model.AssetReference, error)
}

// OrphanLedger 记录远端删除失败的文件，留待后台对账
type OrphanLedger interface {
	Record(ctx context.Context, fileIDs []string) error
	Pending(ctx context.Context, limit int64) ([]string, error)
	Forget(ctx context.Context, fileIDs []string) error
}
