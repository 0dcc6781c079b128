package service

import (
	"Campus/internal/model"
	"Campus/internal/pkg/consts"
	"context"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

type MediaService interface {
	Upload(ctx context.Context, filename string, size int64, reader io.ReadSeeker) (*model.AssetReference, error)
}

type mediaServiceImpl struct {
	assets AssetStore
}

func NewMediaService(assets AssetStore) MediaService {
	return &mediaServiceImpl{assets: assets}
}

// Upload 仅接受图片，读取尺寸后上传到图床
func (s *mediaServiceImpl) Upload(ctx context.Context, filename string, size int64, reader io.ReadSeeker) (*model.AssetReference, error) {
	mtype, err := mimetype.DetectReader(reader)
	if err != nil {
		return nil, ErrParamInvalid
	}
	contentType := mtype.String()
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupport
	}

	var width, height int
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if img, err := imaging.Decode(reader, imaging.AutoOrientation(true)); err == nil {
		bounds := img.Bounds()
		width, height = bounds.Dx(), bounds.Dy()
	} else {
		log.WarnContext(ctx, "failed to decode image dimensions", "filename", filename, "mime", contentType, "err", err)
	}

	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + path.Ext(filename)

	ref, err := s.assets.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		log.ErrorContext(ctx, "asset upload failed", "object", objectName, "err", err)
		return nil, UnExpectedError
	}

	if ref.Width == nil && width > 0 {
		ref.Width = &width
	}
	if ref.Height == nil && height > 0 {
		ref.Height = &height
	}

	log.InfoContext(ctx, "media upload success", "fileId", ref.FileID, "mime", contentType)
	return ref, nil
}
