package job

import (
	"Campus/internal/service/mocks"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type stubLocker struct {
	held     bool
	acquired int
	ttl      time.Duration
}

func (s *stubLocker) TryLock(_ context.Context, _, _ string, expiration time.Duration) (bool, error) {
	s.ttl = expiration
	if s.held {
		return false, nil
	}
	s.acquired++
	return true, nil
}

func (s *stubLocker) UnLock(context.Context, string, string) error {
	return nil
}

func TestReconcile_BulkSuccess(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	assets := mocks.NewMockAssetStore(ctrl)
	ledger := mocks.NewMockOrphanLedger(ctrl)
	locker := &stubLocker{}

	ledger.EXPECT().Pending(ctx, int64(50)).Return([]string{"a", "b"}, nil)
	assets.EXPECT().BulkDelete(gomock.Any(), []string{"a", "b"}).Return(nil)
	ledger.EXPECT().Forget(ctx, []string{"a", "b"}).Return(nil)

	job := NewAssetReconcileJob(assets, ledger, locker, 50, time.Second)
	assert.Equal(t, 2, job.Reconcile(ctx))
	assert.Equal(t, 1, locker.acquired)
}

func TestReconcile_FallsBackToSingleDeletes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	assets := mocks.NewMockAssetStore(ctrl)
	ledger := mocks.NewMockOrphanLedger(ctrl)

	ledger.EXPECT().Pending(ctx, int64(100)).Return([]string{"a", "b", "c"}, nil)
	gomock.InOrder(
		assets.EXPECT().BulkDelete(gomock.Any(), []string{"a", "b", "c"}).Return(errors.New("partial failure")),
		assets.EXPECT().BulkDelete(gomock.Any(), []string{"a"}).Return(nil),
		assets.EXPECT().BulkDelete(gomock.Any(), []string{"b"}).Return(errors.New("still failing")),
		assets.EXPECT().BulkDelete(gomock.Any(), []string{"c"}).Return(nil),
	)
	ledger.EXPECT().Forget(ctx, []string{"a", "c"}).Return(nil)

	job := NewAssetReconcileJob(assets, ledger, nil, 0, time.Second)
	assert.Equal(t, 2, job.Reconcile(ctx))
}

func TestReconcile_NothingPending(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockOrphanLedger(ctrl)

	ledger.EXPECT().Pending(ctx, int64(100)).Return(nil, nil)

	job := NewAssetReconcileJob(mocks.NewMockAssetStore(ctrl), ledger, nil, 0, 0)
	assert.Zero(t, job.Reconcile(ctx))
}

func TestReconcile_LockHeldElsewhere(t *testing.T) {
	ctrl := gomock.NewController(t)

	job := NewAssetReconcileJob(mocks.NewMockAssetStore(ctrl), mocks.NewMockOrphanLedger(ctrl), &stubLocker{held: true}, 0, 0)
	assert.Zero(t, job.Reconcile(context.Background()))
}

func TestReconcile_LockOutlivesWorstCaseFallback(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	assets := mocks.NewMockAssetStore(ctrl)
	ledger := mocks.NewMockOrphanLedger(ctrl)
	locker := &stubLocker{}

	const batch = 20
	timeout := 50 * time.Millisecond
	pending := make([]string, 0, batch)
	for i := 0; i < batch; i++ {
		pending = append(pending, fmt.Sprintf("f%d", i))
	}

	ledger.EXPECT().Pending(ctx, int64(batch)).Return(pending, nil)
	assets.EXPECT().BulkDelete(gomock.Any(), pending).Return(errors.New("partial failure"))
	assets.EXPECT().BulkDelete(gomock.Any(), gomock.Len(1)).Return(errors.New("still failing")).Times(batch)

	job := NewAssetReconcileJob(assets, ledger, locker, batch, timeout)
	assert.Zero(t, job.Reconcile(ctx))
	assert.Equal(t, 1, locker.acquired)
	assert.GreaterOrEqual(t, locker.ttl, time.Duration(batch+1)*timeout)
}
