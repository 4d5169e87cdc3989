// cmd/worker-manager/main.go
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vaibhavisingh876/SwarSaathi/internal/catalog"
	"github.com/vaibhavisingh876/SwarSaathi/internal/common/camunda"
	"github.com/vaibhavisingh876/SwarSaathi/internal/common/config"
	"github.com/vaibhavisingh876/SwarSaathi/internal/common/database"
	"github.com/vaibhavisingh876/SwarSaathi/internal/common/logger"
	"github.com/vaibhavisingh876/SwarSaathi/internal/common/observability"
	"github.com/vaibhavisingh876/SwarSaathi/internal/session"

	// Dialogue Workers (1)
	ci "github.com/vaibhavisingh876/SwarSaathi/internal/workers/dialogue/classify-intent"

	// Form Workers (1)
	efe "github.com/vaibhavisingh876/SwarSaathi/internal/workers/form/extract-field-entity"

	// Scheme Workers (2)
	fes "github.com/vaibhavisingh876/SwarSaathi/internal/workers/schemes/filter-eligible-schemes"
	ss "github.com/vaibhavisingh876/SwarSaathi/internal/workers/schemes/search-schemes"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient zbc.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry (only when the catalog lives there) ---
	var pg *database.PostgresClient
	if cfg.Catalog.Source == "postgres" {
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")
	}

	// --- Init Redis with retry (only for the redis session backend) ---
	var redis *database.RedisClient
	if cfg.Session.Backend == "redis" {
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Load Scheme Catalog ---
	var catalogDB *sql.DB
	if pg != nil {
		catalogDB = pg.DB
	}
	cat, err := catalog.Load(ctx, cfg.Catalog, catalogDB)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}
	zapLog.Info("Scheme catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("schemes", cat.Len()),
	)

	// --- Init Conversation Context Store ---
	var store session.Store
	switch cfg.Session.Backend {
	case "redis":
		store = session.NewRedisStore(
			redis.Client,
			cfg.Session.KeyPrefix,
			time.Duration(cfg.Session.TTLSeconds)*time.Second,
			cfg.Session.MaxHistory,
		)
	default:
		store = session.NewMemoryStore(cfg.Session.MaxHistory)
	}
	zapLog.Info("Session store initialized", zap.String("backend", cfg.Session.Backend))

	// --- START: Register ALL 4 Workers ---
	manager := camunda.NewManager(zeebeClient, zapLog)

	// --- 1. Form Workers (1) ---
	manager.Start(efe.TaskType, cfg.Workers[efe.TaskType], efe.NewHandler(
		&efe.Config{
			Timeout: time.Duration(cfg.Workers[efe.TaskType].Timeout) * time.Millisecond,
		},
		log,
	).Handle)

	// --- 2. Dialogue Workers (1) ---
	manager.Start(ci.TaskType, cfg.Workers[ci.TaskType], ci.NewHandler(
		&ci.Config{
			Timeout:         time.Duration(cfg.Workers[ci.TaskType].Timeout) * time.Millisecond,
			DefaultLanguage: cfg.Dialogue.DefaultLanguage,
		},
		store, log,
	).Handle)

	// --- 3. Scheme Workers (2) ---
	manager.Start(ss.TaskType, cfg.Workers[ss.TaskType], ss.NewHandler(
		&ss.Config{
			Timeout: time.Duration(cfg.Workers[ss.TaskType].Timeout) * time.Millisecond,
		},
		cat, log,
	).Handle)

	manager.Start(fes.TaskType, cfg.Workers[fes.TaskType], fes.NewHandler(
		&fes.Config{
			Timeout: time.Duration(cfg.Workers[fes.TaskType].Timeout) * time.Millisecond,
		},
		cat, log,
	).Handle)

	zapLog.Info("All workers registered successfully", zap.Int("count", manager.Count()))

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	manager.Close()

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}
