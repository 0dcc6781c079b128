package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const unlockScript = "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end"

// Locker 多实例部署时保证后台任务只在一个实例上执行
type Locker struct {
	rdb *redis.Client
}

func NewLocker(rdb *redis.Client) *Locker {
	return &Locker{rdb: rdb}
}

// TryLock 不重试，获取失败返回 false
func (s *Locker) TryLock(ctx context.Context, key, value string, expiration time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, key, value, expiration).Result()
}

// UnLock 仅释放自己持有的锁
func (s *Locker) UnLock(ctx context.Context, key, value string) error {
	return s.rdb.Eval(ctx, unlockScript, []string{key}, value).Err()
}
