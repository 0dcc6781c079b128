package cron

import (
	"Campus/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	reconcileJob *job.AssetReconcileJob
	schedule     string
}

// NewCronManager reconcileJob 为空时不注册对账任务
func NewCronManager(reconcileJob *job.AssetReconcileJob, schedule string) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		reconcileJob: reconcileJob,
		schedule:     schedule,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if s.reconcileJob == nil {
		log.Info("orphan ledger disabled, asset reconcile job not registered")
		return nil
	}
	if _, err := s.engine.AddJob(s.schedule, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(s.reconcileJob)); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
