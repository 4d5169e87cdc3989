// internal/common/camunda/worker.go
package camunda

import (
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.uber.org/zap"

	"github.com/vaibhavisingh876/SwarSaathi/internal/common/config"
)

// HandlerFunc is the job callback shape every worker handler exposes.
type HandlerFunc func(client worker.JobClient, job entities.Job)

// Manager opens job workers on one shared Zeebe client and closes
// them together on shutdown.
type Manager struct {
	client  zbc.Client
	logger  *zap.Logger
	workers []worker.JobWorker
}

func NewManager(client zbc.Client, logger *zap.Logger) *Manager {
	return &Manager{client: client, logger: logger}
}

// Start registers a worker for taskType unless it is disabled.
// Timeout is the job activation timeout in milliseconds.
func (m *Manager) Start(taskType string, cfg config.WorkerConfig, handler HandlerFunc) {
	if !cfg.Enabled {
		m.logger.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	w := m.client.NewJobWorker().
		JobType(taskType).
		Handler(worker.JobHandler(handler)).
		MaxJobsActive(cfg.MaxJobsActive).
		Timeout(time.Duration(cfg.Timeout) * time.Millisecond).
		Open()
	m.workers = append(m.workers, w)

	m.logger.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", cfg.MaxJobsActive),
		zap.Int("timeout_ms", cfg.Timeout),
	)
}

// Count reports how many workers are running.
func (m *Manager) Count() int {
	return len(m.workers)
}

// Close stops all workers and waits for in-flight jobs to drain.
func (m *Manager) Close() {
	for _, w := range m.workers {
		w.Close()
	}
	for _, w := range m.workers {
		w.AwaitClose()
	}
	m.logger.Info("all workers stopped", zap.Int("count", len(m.workers)))
}
