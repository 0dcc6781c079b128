package job

import (
	"Campus/internal/pkg/consts"
	"Campus/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// Locker 跨实例互斥，可为空
type Locker interface {
	TryLock(ctx context.Context, key, value string, expiration time.Duration) (bool, error)
	UnLock(ctx context.Context, key, value string) error
}

// AssetReconcileJob 重试删除登记在孤儿集合中的远端文件
type AssetReconcileJob struct {
	assets  service.AssetStore
	ledger  service.OrphanLedger
	locker  Locker
	batch   int64
	timeout time.Duration
}

func NewAssetReconcileJob(assets service.AssetStore, ledger service.OrphanLedger, locker Locker, batch int64, timeout time.Duration) *AssetReconcileJob {
	if batch <= 0 {
		batch = 100
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AssetReconcileJob{
		assets:  assets,
		ledger:  ledger,
		locker:  locker,
		batch:   batch,
		timeout: timeout,
	}
}

func (s *AssetReconcileJob) Run() {
	s.Reconcile(context.Background())
}

// Reconcile 返回本轮成功清理的数量
func (s *AssetReconcileJob) Reconcile(ctx context.Context) int {
	if s.locker != nil {
		owner := uuid.NewString()
		ok, err := s.locker.TryLock(ctx, consts.AssetReconcileLockKey, owner, s.lockTTL())
		if err != nil {
			log.ErrorContext(ctx, "asset reconcile lock failed", "err", err)
			return 0
		}
		if !ok {
			return 0
		}
		defer func() {
			if err := s.locker.UnLock(ctx, consts.AssetReconcileLockKey, owner); err != nil {
				log.WarnContext(ctx, "asset reconcile unlock failed", "err", err)
			}
		}()
	}

	pending, err := s.ledger.Pending(ctx, s.batch)
	if err != nil {
		log.ErrorContext(ctx, "failed to load orphan assets", "err", err)
		return 0
	}
	if len(pending) == 0 {
		return 0
	}

	log.InfoContext(ctx, "start asset reconcile job", "pending", len(pending))

	cleaned := pending
	if err = s.delete(ctx, pending); err != nil {
		log.WarnContext(ctx, "orphan bulk delete failed, retrying one by one", "count", len(pending), "err", err)
		cleaned = s.deleteEach(ctx, pending)
	}
	if len(cleaned) == 0 {
		return 0
	}

	if err = s.ledger.Forget(ctx, cleaned); err != nil {
		log.ErrorContext(ctx, "failed to forget cleaned orphan assets", "file_ids", cleaned, "err", err)
		return 0
	}

	log.InfoContext(ctx, "asset reconcile job finished", "cleaned_count", len(cleaned), "remaining", len(pending)-len(cleaned))
	return len(cleaned)
}

// lockTTL 覆盖一次整批删除加逐个重试的最坏耗时，另留一个超时给账本读写
func (s *AssetReconcileJob) lockTTL() time.Duration {
	return time.Duration(s.batch+2) * s.timeout
}

func (s *AssetReconcileJob) deleteEach(ctx context.Context, fileIDs []string) []string {
	cleaned := make([]string, 0, len(fileIDs))
	for _, id := range fileIDs {
		if err := s.delete(ctx, []string{id}); err != nil {
			log.WarnContext(ctx, "orphan asset still not deletable", "fileId", id, "err", err)
			continue
		}
		cleaned = append(cleaned, id)
	}
	return cleaned
}

func (s *AssetReconcileJob) delete(ctx context.Context, fileIDs []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.assets.BulkDelete(ctx, fileIDs)
}
