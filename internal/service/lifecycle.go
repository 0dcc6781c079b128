package service

import (
	"Campus/internal/api/dto"
	"Campus/internal/model"
	"Campus/internal/pkg/util"
	"Campus/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

// ResourceService 资源生命周期：创建、查询、级联清理远端图片后删除
type ResourceService[P any, R any] interface {
	Create(ctx context.Context, payload P) (uint64, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]*R, error)
	GetByID(ctx context.Context, id uint64) (*R, error)
}

// Payload 通过校验后可转换为模型的创建请求
type Payload[M model.Resource] interface {
	ToModel() (M, error)
}

type (
	BlogService   = ResourceService[dto.BlogCreateDTO, dto.BlogDTO]
	NoticeService = ResourceService[dto.NoticeCreateDTO, dto.NoticeDTO]
	ThanksService = ResourceService[dto.ThanksCreateDTO, dto.ThanksDTO]
)

// LifecycleOptions 删除流程的可调参数
type LifecycleOptions struct {
	Policy        CorruptionPolicy
	DeleteTimeout time.Duration
	// Ledger 为空时远端删除失败只记录日志
	Ledger OrphanLedger
}

type Lifecycle[M model.Resource, P Payload[M], R any] struct {
	kind   model.Kind
	repo   repository.ResourceRepo[M]
	assets AssetStore
	opts   LifecycleOptions
}

func NewLifecycle[M model.Resource, P Payload[M], R any](kind model.Kind, repo repository.ResourceRepo[M], assets AssetStore, opts LifecycleOptions) *Lifecycle[M, P, R] {
	if opts.Policy == "" {
		opts.Policy = PolicySkip
	}
	return &Lifecycle[M, P, R]{
		kind:   kind,
		repo:   repo,
		assets: assets,
		opts:   opts,
	}
}

func NewBlogService(repo repository.ResourceRepo[*model.Blog], assets AssetStore, opts LifecycleOptions) BlogService {
	return NewLifecycle[*model.Blog, dto.BlogCreateDTO, dto.BlogDTO](model.KindBlog, repo, assets, opts)
}

func NewNoticeService(repo repository.ResourceRepo[*model.Notice], assets AssetStore, opts LifecycleOptions) NoticeService {
	return NewLifecycle[*model.Notice, dto.NoticeCreateDTO, dto.NoticeDTO](model.KindNotice, repo, assets, opts)
}

func NewThanksService(repo repository.ResourceRepo[*model.Thanks], assets AssetStore, opts LifecycleOptions) ThanksService {
	return NewLifecycle[*model.Thanks, dto.ThanksCreateDTO, dto.ThanksDTO](model.KindThanks, repo, assets, opts)
}

// Create 校验后单次插入，返回新 id
func (s *Lifecycle[M, P, R]) Create(ctx context.Context, payload P) (uint64, error) {
	if fields := util.ValidateDTO(payload); len(fields) > 0 {
		return 0, &ValidationError{Fields: fields}
	}

	m, err := payload.ToModel()
	if err != nil {
		return 0, &ValidationError{Fields: []dto.FieldError{{Field: "body", Reason: err.Error()}}}
	}

	if err = s.repo.Create(ctx, m); err != nil {
		log.ErrorContext(ctx, "create resource failed", "kind", s.kind, "err", err)
		return 0, persistence("create", err)
	}

	log.InfoContext(ctx, "resource created", "kind", s.kind, "id", m.PrimaryKey())
	return m.PrimaryKey(), nil
}

// Delete 查询 -> 远端图片尽力删除 -> 删除本地记录，不回滚
func (s *Lifecycle[M, P, R]) Delete(ctx context.Context, id uint64) error {
	images, ok, err := s.repo.GetImages(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "lookup resource failed", "kind", s.kind, "id", id, "err", err)
		return persistence("lookup", err)
	}
	if !ok {
		return ErrNotFound
	}

	if !images.IsEmpty() {
		if err = s.cleanupAssets(ctx, id, images); err != nil {
			return err
		}
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "delete resource failed", "kind", s.kind, "id", id, "err", err)
		return persistence("delete", err)
	}
	if !deleted {
		return ErrNotFound
	}

	log.InfoContext(ctx, "resource deleted", "kind", s.kind, "id", id)
	return nil
}

func (s *Lifecycle[M, P, R]) cleanupAssets(ctx context.Context, id uint64, images model.Images) error {
	fileIDs, err := images.FileIDs()
	if err != nil {
		corruption := &DataCorruptionError{Kind: s.kind, ID: id, Err: err}
		if s.opts.Policy == PolicyAbort {
			log.ErrorContext(ctx, "stored images corrupted, delete aborted", "kind", s.kind, "id", id, "err", err)
			return corruption
		}
		log.WarnContext(ctx, "stored images corrupted, asset cleanup skipped", "kind", s.kind, "id", id, "err", err)
		return nil
	}
	if len(fileIDs) == 0 {
		return nil
	}

	bestEffortDelete(ctx, s.assets, s.opts, s.kind, id, fileIDs)
	return nil
}

// List 全量列表，不含 content
func (s *Lifecycle[M, P, R]) List(ctx context.Context) ([]*R, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list resources failed", "kind", s.kind, "err", err)
		return nil, persistence("list", err)
	}

	out := make([]*R, 0, len(items))
	for _, item := range items {
		if !item.StoredImages().Valid() {
			log.WarnContext(ctx, "stored images are not valid json, omitted from list", "kind", s.kind, "id", item.PrimaryKey())
			item.SetStoredImages(nil)
		}
		r, err := s.toDTO(item)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// GetByID 完整记录，images 原样返回
func (s *Lifecycle[M, P, R]) GetByID(ctx context.Context, id uint64) (*R, error) {
	m, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "get resource failed", "kind", s.kind, "id", id, "err", err)
		return nil, persistence("get", err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	if !m.StoredImages().Valid() {
		log.ErrorContext(ctx, "stored images are not valid json", "kind", s.kind, "id", id)
		return nil, &DataCorruptionError{Kind: s.kind, ID: id, Err: model.ErrImagesCorrupted}
	}
	return s.toDTO(m)
}

func (s *Lifecycle[M, P, R]) toDTO(m M) (*R, error) {
	var out R
	if err := copier.Copy(&out, m); err != nil {
		return nil, err
	}
	return &out, nil
}
