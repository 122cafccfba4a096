package engine

import "context"

// SchedulerService runs a ClockScheduler under the service hub
// Stop is also triggered by cancelling ctx
type SchedulerService struct {
	scheduler *ClockScheduler
	ctx       context.Context
	deps      []string
}

// NewSchedulerService starts the scheduler with ctx once every service in deps is up
func NewSchedulerService(ctx context.Context, scheduler *ClockScheduler, deps ...string) *SchedulerService {
	return &SchedulerService{scheduler: scheduler, ctx: ctx, deps: deps}
}

func (s *SchedulerService) Name() string           { return "scheduler" }
func (s *SchedulerService) Dependencies() []string { return s.deps }
func (s *SchedulerService) Init() error            { return nil }

func (s *SchedulerService) Start() error {
	s.scheduler.Start(s.ctx)
	return nil
}

func (s *SchedulerService) Stop() error {
	s.scheduler.Stop()
	return nil
}
