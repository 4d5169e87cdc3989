// internal/workers/schemes/filter-eligible-schemes/handler.go
package filtereligibleschemes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vaibhavisingh876/SwarSaathi/internal/catalog"
	"github.com/vaibhavisingh876/SwarSaathi/internal/common/logger"
	"github.com/vaibhavisingh876/SwarSaathi/internal/common/metrics"
	"github.com/vaibhavisingh876/SwarSaathi/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "filter-eligible-schemes"

type Handler struct {
	config  *Config
	catalog *catalog.Catalog
	logger  logger.Logger
}

func NewHandler(config *Config, cat *catalog.Catalog, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		catalog: cat,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "PARSE_ERROR").Inc()
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "PROFILE_INVALID").Inc()
		h.failJob(client, job, "PROFILE_INVALID", err.Error())
		return
	}

	metrics.EligibilityFilters.Inc()
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())

	h.completeJob(client, job, output)
}

// execute narrows by query first, then applies eligibility. The order
// never changes the outcome since both steps only ever remove entries.
func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if err := validateProfile(input.Profile); err != nil {
		return nil, err
	}

	candidates := h.catalog.Search(input.Query)
	results := catalog.FilterEligible(candidates, input.Profile)
	if input.Profile.Category != "" {
		results = catalog.FilterByCategory(results, input.Profile.Category)
	}

	h.logger.Debug("eligibility filtered", map[string]interface{}{
		"candidates": len(candidates),
		"eligible":   len(results),
	})

	return &Output{
		Total:   len(results),
		Schemes: results,
	}, nil
}

func validateProfile(p models.UserProfile) error {
	if p.Age != nil && *p.Age < 0 {
		return fmt.Errorf("profile age must not be negative")
	}
	if p.Income != nil && *p.Income < 0 {
		return fmt.Errorf("profile income must not be negative")
	}
	switch p.Gender {
	case "", models.GenderAny, models.GenderMale, models.GenderFemale:
	default:
		return fmt.Errorf("unknown profile gender %q", p.Gender)
	}
	return nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
