// internal/workers/form/extract-field-entity/handler.go
package extractfieldentity

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vaibhavisingh876/SwarSaathi/internal/common/logger"
	"github.com/vaibhavisingh876/SwarSaathi/internal/common/metrics"
	"github.com/vaibhavisingh876/SwarSaathi/internal/lexicon"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "extract-field-entity"

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "EXTRACTION_INPUT_INVALID").Inc()
		h.failJob(client, job, "EXTRACTION_INPUT_INVALID", err.Error())
		return
	}

	if output.Matched {
		metrics.ExtractionsMatched.WithLabelValues(output.Extraction.Concept).Inc()
	} else {
		metrics.ExtractionsUnmatched.Inc()
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())

	h.completeJob(client, job, output)
}

// execute is pure: same utterance and hint always yield the same
// result. Concepts are tried in a fixed priority order, first match
// wins; the field hint is only consulted after every concept misses.
func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, fmt.Errorf("utteranceText is empty")
	}

	for _, concept := range lexicon.ExtractionOrder {
		if extraction, ok := tryConcept(concept, text); ok {
			h.logger.Debug("concept matched", map[string]interface{}{
				"concept": extraction.Concept,
				"field":   extraction.Field,
			})
			return &Output{Matched: true, Extraction: extraction}, nil
		}
	}

	if field := strings.TrimSpace(input.TargetField); field != "" && validFields[field] {
		return &Output{
			Matched: true,
			Extraction: &Extraction{
				Field:   field,
				Value:   text,
				Concept: ConceptGenericCapture,
			},
		}, nil
	}

	return &Output{Matched: false}, nil
}

// tryConcept applies one concept's trigger test and payload pattern.
// Malformed numerics are non-matches, never errors.
func tryConcept(concept lexicon.Concept, text string) (*Extraction, bool) {
	switch concept {
	case lexicon.ConceptPersonName:
		if name, ok := lexicon.ExtractName(text); ok {
			return &Extraction{Field: FieldFullName, Value: name, Concept: string(concept)}, true
		}

	case lexicon.ConceptAgeValue:
		if !lexicon.HasTrigger(concept, text) {
			return nil, false
		}
		if run, ok := lexicon.FirstDigitRun(text); ok {
			if _, err := strconv.Atoi(run); err == nil {
				return &Extraction{Field: FieldAge, Value: run, Concept: string(concept)}, true
			}
		}

	case lexicon.ConceptIncomeValue:
		if !lexicon.HasTrigger(concept, text) {
			return nil, false
		}
		if amount, ok := lexicon.FirstAmount(text); ok {
			if _, err := strconv.ParseFloat(amount, 64); err == nil {
				return &Extraction{Field: FieldMonthlyIncome, Value: amount, Concept: string(concept)}, true
			}
		}

	case lexicon.ConceptGenderMale:
		if lexicon.HasTrigger(concept, text) {
			return &Extraction{Field: FieldGender, Value: "male", Concept: string(concept)}, true
		}

	case lexicon.ConceptGenderFemale:
		if lexicon.HasTrigger(concept, text) {
			return &Extraction{Field: FieldGender, Value: "female", Concept: string(concept)}, true
		}

	case lexicon.ConceptPhoneNumber:
		if !lexicon.HasTrigger(concept, text) {
			return nil, false
		}
		if phone, ok := lexicon.FirstPhoneNumber(text); ok {
			return &Extraction{Field: FieldMobileNumber, Value: phone, Concept: string(concept)}, true
		}

	case lexicon.ConceptStateName:
		if state, ok := lexicon.FindState(text); ok {
			return &Extraction{Field: FieldState, Value: state, Concept: string(concept)}, true
		}
	}

	return nil, false
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
