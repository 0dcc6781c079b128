package service

import (
	"Campus/internal/model"
	"context"
	"fmt"
	log "log/slog"
)

// bestEffortDelete 远端批量删除，任何失败都只记录日志（及孤儿登记），不向调用方传播
func bestEffortDelete(ctx context.Context, assets AssetStore, opts LifecycleOptions, kind model.Kind, id uint64, fileIDs []string) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()

		deleteCtx := ctx
		if opts.DeleteTimeout > 0 {
			var cancel context.CancelFunc
			deleteCtx, cancel = context.WithTimeout(ctx, opts.DeleteTimeout)
			defer cancel()
		}
		return assets.BulkDelete(deleteCtx, fileIDs)
	}()

	if err == nil {
		log.InfoContext(ctx, "remote assets deleted", "kind", kind, "id", id, "count", len(fileIDs))
		return
	}

	extErr := &ExternalServiceError{Op: "bulk delete", FileIDs: fileIDs, Err: err}
	log.WarnContext(ctx, "asset cleanup failed, continuing with local delete", "kind", kind, "id", id, "err", extErr)

	if opts.Ledger == nil {
		return
	}
	if lErr := opts.Ledger.Record(context.WithoutCancel(ctx), fileIDs); lErr != nil {
		log.ErrorContext(ctx, "failed to record orphan assets", "kind", kind, "id", id, "file_ids", fileIDs, "err", lErr)
	}
}
