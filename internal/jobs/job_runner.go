package jobs

import (
	"tooltrack-backend/internal/config"
	"tooltrack-backend/internal/logger"
	"tooltrack-backend/internal/repository"
	"tooltrack-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	toolRepo repository.ToolRepository
	toolSvc  service.ToolService
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(toolRepo repository.ToolRepository, toolSvc service.ToolService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		toolRepo: toolRepo,
		toolSvc:  toolSvc,
		config:   cfg,
	}
}

// Config returns the loaded configuration.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
