// internal/workers/dialogue/classify-intent/handler.go
package classifyintent

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/vaibhavisingh876/SwarSaathi/internal/common/errors"
	"github.com/vaibhavisingh876/SwarSaathi/internal/common/logger"
	"github.com/vaibhavisingh876/SwarSaathi/internal/common/metrics"
	"github.com/vaibhavisingh876/SwarSaathi/internal/lexicon"
	"github.com/vaibhavisingh876/SwarSaathi/internal/models"
	"github.com/vaibhavisingh876/SwarSaathi/internal/session"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "classify-intent"

// ageThreshold splits the two age-continuation template sets.
const ageThreshold = 35

type Handler struct {
	config *Config
	store  session.Store
	locks  *session.KeyedMutex
	logger logger.Logger
	errors *errs.ErrorHandler
}

func NewHandler(config *Config, store session.Store, log logger.Logger) *Handler {
	scopedLog := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config: config,
		store:  store,
		locks:  session.NewKeyedMutex(),
		logger: scopedLog,
		errors: errs.NewErrorHandler(scopedLog),
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
		// Store failures are retryable; everything else is a business
		// error the process model has to catch.
		var stdErr *errs.StandardError
		if strings.Contains(err.Error(), "session") {
			stdErr = errs.NewSessionStoreFailedError(err)
		} else {
			stdErr = errs.NewIntentInputInvalidError(err.Error())
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
		h.errors.HandleJobError(ctx, client, job, stdErr)
		return
	}

	metrics.IntentsClassified.WithLabelValues(output.Intent).Inc()
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())

	h.completeJob(client, job, output)
}

// execute holds the session lock for the whole call: classify reads
// the derived focus and then appends, so one utterance per session may
// be in flight at a time.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, fmt.Errorf("utteranceText is empty")
	}

	lang := input.Language
	if lang == "" {
		lang = h.config.DefaultLanguage
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = session.NewSessionID()
	}

	h.locks.Lock(sessionID)
	defer h.locks.Unlock(sessionID)

	focus, err := h.store.CurrentFocus(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	intent, topic, response := classify(text, lang, focus)

	// Exactly two turns per invocation: the user's utterance with the
	// resolved intent, then the assistant response carrying the topic
	// the next focus derivation will read.
	now := time.Now().UTC()
	err = h.store.Append(ctx, sessionID,
		models.Turn{Speaker: models.SpeakerUser, Text: text, Intent: intent, Timestamp: now},
		models.Turn{Speaker: models.SpeakerAssistant, Text: response, Intent: intent, Topic: topic, Timestamp: now},
	)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("intent classified", map[string]interface{}{
		"sessionId": sessionID,
		"intent":    intent,
		"topic":     topic,
	})

	return &Output{
		SessionID:    sessionID,
		Intent:       intent,
		Topic:        topic,
		ResponseText: response,
	}, nil
}

// classify is the ordered rule cascade; first match wins. Continuation
// rules fire only while the derived focus awaits their answer, and
// their responses clear the focus by carrying no awaiting topic.
func classify(text, lang string, focus models.Focus) (intent, topic, response string) {
	if lexicon.HasSchemeTrigger(text) {
		topic = lexicon.SchemeTopic(text)
		return models.IntentSchemeInquiry, topic, schemeResponses[topic].render(lang)
	}

	if lexicon.HasTrigger(lexicon.ConceptApplicationHelp, text) {
		return models.IntentApplicationHelp, "", applicationHelpResponse.render(lang)
	}

	if lexicon.HasTrigger(lexicon.ConceptEligibilityInc, text) {
		return models.IntentEligibility, models.TopicIncome, askIncomeResponse.render(lang)
	}

	if lexicon.HasTrigger(lexicon.ConceptEligibilityAge, text) {
		return models.IntentEligibility, models.TopicAge, askAgeResponse.render(lang)
	}

	if focus == models.FocusAwaitingIncome {
		if run, ok := lexicon.FirstDigitRun(text); ok {
			return models.IntentEligibility, "", incomeContinuationResponse.renderf(lang, run)
		}
	}

	if focus == models.FocusAwaitingAge {
		if run, ok := lexicon.FirstDigitRun(text); ok {
			if age, err := strconv.Atoi(run); err == nil {
				if age < ageThreshold {
					return models.IntentEligibility, "", ageUnderThresholdResponse.renderf(lang, run)
				}
				return models.IntentEligibility, "", ageOverThresholdResponse.renderf(lang, run)
			}
		}
	}

	if lexicon.HasTrigger(lexicon.ConceptGreeting, text) {
		return models.IntentGreeting, "", greetingResponse.render(lang)
	}

	if lexicon.HasTrigger(lexicon.ConceptThanks, text) {
		return models.IntentThanks, "", thanksResponse.render(lang)
	}

	return models.IntentGeneral, "", generalResponse.render(lang)
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
