package redis

import (
	"Campus/internal/pkg/consts"
	"context"

	"github.com/redis/go-redis/v9"
)

// OrphanLedger 远端删除失败的 fileId 集合
type OrphanLedger struct {
	rdb *redis.Client
}

func NewOrphanLedger(rdb *redis.Client) *OrphanLedger {
	return &OrphanLedger{rdb: rdb}
}

func (s *OrphanLedger) Record(ctx context.Context, fileIDs []string) error {
	if len(fileIDs) == 0 {
		return nil
	}
	return s.rdb.SAdd(ctx, consts.AssetOrphanKey, toArgs(fileIDs)...).Err()
}

// Pending 随机取出最多 limit 个待清理 fileId，不从集合中移除
func (s *OrphanLedger) Pending(ctx context.Context, limit int64) ([]string, error) {
	return s.rdb.SRandMemberN(ctx, consts.AssetOrphanKey, limit).Result()
}

func (s *OrphanLedger) Forget(ctx context.Context, fileIDs []string) error {
	if len(fileIDs) == 0 {
		return nil
	}
	return s.rdb.SRem(ctx, consts.AssetOrphanKey, toArgs(fileIDs)...).Err()
}

func toArgs(ids []string) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
