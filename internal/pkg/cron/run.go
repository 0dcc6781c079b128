package cron

import (
	"context"
	"fmt"
	log "log/slog"
)

// Run 注册任务并启动引擎，ctx 结束后等待执行中的任务退出再返回
func (s *Manager) Run(ctx context.Context) error {
	if err := s.RegisterJobs(); err != nil {
		return fmt.Errorf("register cron jobs: %w", err)
	}

	log.Info("Cron Jobs starting...", "entries", len(s.engine.Entries()), "schedule", s.schedule)
	s.Start()

	<-ctx.Done()
	log.Info("Cron Jobs stopping...")
	s.Stop()
	return nil
}
