package service

import (
	"Campus/internal/api/dto"
	"Campus/internal/model"
	"Campus/internal/pkg/util"
	"Campus/internal/repository"
	"context"
	log "log/slog"
)

type FolderService interface {
	ResourceService[dto.FolderCreateDTO, dto.FolderDTO]
	AppendMedia(ctx context.Context, id uint64, req dto.AppendMediaDTO) error
	RemoveMedia(ctx context.Context, id uint64, fileID string) error
}

type folderServiceImpl struct {
	*Lifecycle[*model.Folder, dto.FolderCreateDTO, dto.FolderDTO]
	folderRepo repository.FolderRepo
}

func NewFolderService(repo repository.FolderRepo, assets AssetStore, opts LifecycleOptions) FolderService {
	return &folderServiceImpl{
		Lifecycle:  NewLifecycle[*model.Folder, dto.FolderCreateDTO, dto.FolderDTO](model.KindFolder, repo, assets, opts),
		folderRepo: repo,
	}
}

// AppendMedia 向文件夹追加媒体
func (s *folderServiceImpl) AppendMedia(ctx context.Context, id uint64, req dto.AppendMediaDTO) error {
	if fields := util.ValidateDTO(req); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return s.updateMedia(ctx, id, func(refs []model.AssetReference) ([]model.AssetReference, error) {
		return append(refs, req.References()...), nil
	})
}

// RemoveMedia 从文件夹移除单个媒体，列表写回成功后才删除远端文件，远端删除失败不影响移除
func (s *folderServiceImpl) RemoveMedia(ctx context.Context, id uint64, fileID string) error {
	err := s.updateMedia(ctx, id, func(refs []model.AssetReference) ([]model.AssetReference, error) {
		kept := make([]model.AssetReference, 0, len(refs))
		for _, ref := range refs {
			if ref.FileID != fileID {
				kept = append(kept, ref)
			}
		}
		if len(kept) == len(refs) {
			return nil, ErrNotFound
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	bestEffortDelete(ctx, s.assets, s.opts, s.kind, id, []string{fileID})
	return nil
}

// updateMedia 修改媒体列表前必须能完整解析现有内容，读改写在同一事务内完成
func (s *folderServiceImpl) updateMedia(ctx context.Context, id uint64, change func([]model.AssetReference) ([]model.AssetReference, error)) error {
	var opErr error
	ok, err := s.folderRepo.UpdateImages(ctx, id, func(current model.Images) (model.Images, error) {
		refs, err := current.Parse()
		if err != nil {
			log.ErrorContext(ctx, "stored folder media corrupted", "id", id, "err", err)
			opErr = &DataCorruptionError{Kind: model.KindFolder, ID: id, Err: err}
			return nil, opErr
		}

		next, err := change(refs)
		if err != nil {
			opErr = err
			return nil, err
		}

		images, err := model.NewImages(next)
		if err != nil {
			opErr = err
			return nil, err
		}
		return images, nil
	})
	if opErr != nil {
		return opErr
	}
	if err != nil {
		log.ErrorContext(ctx, "update folder media failed", "id", id, "err", err)
		return persistence("update", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
