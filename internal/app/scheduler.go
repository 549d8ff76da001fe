package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"osvita-admin/internal/service"
)

// Scheduler керує фоновою догенерацією розкладу: раз на добу
// добиває заняття так, щоб попереду завжди був повний горизонт
type Scheduler struct {
	scheduleService *service.ScheduleService
	weeksAhead      int
	interval        time.Duration
	logger          *zap.Logger
	stopChan        chan struct{}
}

// NewScheduler створює новий планувальник фонових задач
func NewScheduler(scheduleService *service.ScheduleService, weeksAhead int, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduleService: scheduleService,
		weeksAhead:      weeksAhead,
		interval:        24 * time.Hour,
		logger:          logger,
		stopChan:        make(chan struct{}),
	}
}

// Start запускає фонові задачі
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler",
		zap.Int("weeks_ahead", s.weeksAhead),
		zap.Duration("interval", s.interval))

	go s.runGenerationTask(ctx)
}

// Stop зупиняє фонові задачі
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runGenerationTask періодично догенеровує заняття для всіх активних груп
func (s *Scheduler) runGenerationTask(ctx context.Context) {
	// Перший запуск одразу при старті
	s.generate(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.generate(ctx)
		case <-s.stopChan:
			s.logger.Info("Schedule generation task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Schedule generation task cancelled")
			return
		}
	}
}

func (s *Scheduler) generate(ctx context.Context) {
	s.logger.Info("Starting automatic schedule generation")

	report, err := s.scheduleService.GenerateAll(ctx, s.weeksAhead)
	if err != nil {
		s.logger.Error("Failed to generate schedule", zap.Error(err))
		return
	}

	s.logger.Info("Automatic schedule generation completed",
		zap.String("run_id", report.RunID.String()),
		zap.Int("total_generated", report.TotalGenerated),
		zap.Int("total_skipped", report.TotalSkipped))
}
