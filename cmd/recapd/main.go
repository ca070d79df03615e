// recapd server — exposes the HTTP API, runs the workflow worker pool, and
// coordinates video analysis runs.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/recapd/recapd/pkg/api"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/database"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/events"
	"github.com/recapd/recapd/pkg/extractor"
	"github.com/recapd/recapd/pkg/llm"
	"github.com/recapd/recapd/pkg/services"
	"github.com/recapd/recapd/pkg/storage"
	"github.com/recapd/recapd/pkg/transcriptapi"
	"github.com/recapd/recapd/pkg/version"
	"github.com/recapd/recapd/pkg/workflows"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("RECAPD_CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	// .env is optional; a containerized deployment injects the environment
	// directly.
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting recapd", "version", version.Full(), "pod_id", cfg.PodID, "config_dir", *configDir)

	// 2. Database (runs pending migrations)
	dbClient, err := database.NewClient(ctx, database.DefaultConfig(cfg.DatabaseURL))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Re-queue this pod's own orphaned runs from a previous life
	if err := engine.RequeueStartupOrphans(ctx, dbClient.Client, cfg.PodID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal; the periodic orphan scan covers stragglers
	}

	// 4. Event bus: in-process broker fed by a dedicated LISTEN connection
	broker := events.NewBroker()
	notifyListener := events.NewNotifyListener(cfg.DatabaseURL, broker)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	broker.SetListener(notifyListener)
	slog.Info("Event bus initialized")

	// 5. Engine over the shared log
	runLog := engine.NewLog(dbClient.Client, dbClient.DB(), broker)
	eng := engine.New(dbClient.Client, dbClient.DB(), runLog, cfg.Engine)

	// 6. Domain services and coordinator
	transcriptService := services.NewTranscriptService(dbClient.Client)
	analysisService := services.NewAnalysisService(dbClient.Client)
	slideService := services.NewSlideService(dbClient.Client)
	coord := coordinator.New(eng, transcriptService, analysisService, slideService)
	slog.Info("Services initialized")

	// 7. External clients
	transcriptAPI := transcriptapi.NewClient(cfg.Clients.TranscriptAPI)
	extractorClient := extractor.NewClient(cfg.Clients.Extractor)

	objectStore, err := storage.NewObjectStore(ctx, cfg.Storage.ObjectStore)
	if err != nil {
		slog.Error("Failed to initialize object store", "error", err)
		os.Exit(1)
	}
	blobStore, err := storage.NewBlobStore(ctx, cfg.Storage.BlobStore, cfg.Storage.BlobPublicBaseURL)
	if err != nil {
		slog.Error("Failed to initialize blob store", "error", err)
		os.Exit(1)
	}

	// grpc.NewClient dials lazily; the first Generate call connects.
	llmClient, err := llm.NewGRPCClient(cfg.LLM.GRPCAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.GRPCAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("External clients initialized", "llm_addr", cfg.LLM.GRPCAddr)

	// 8. Workflow registration
	workflows.Register(eng, &workflows.Deps{
		Client:        dbClient.Client,
		Transcripts:   transcriptService,
		Analyses:      analysisService,
		Slides:        slideService,
		TranscriptAPI: transcriptAPI,
		Extractor:     extractorClient,
		ObjectStore:   objectStore,
		BlobStore:     blobStore,
		LLM:           llmClient,
		LLMCfg:        cfg.LLM,
		Engine:        eng,
		Coordinator:   coord,
	})

	// 9. Worker pool (before the HTTP server takes traffic)
	workerPool := engine.NewWorkerPool(cfg.PodID, eng)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. HTTP server
	server := api.NewServer(cfg.Server, eng, coord, transcriptService, analysisService, slideService, workerPool)
	httpServer := &http.Server{
		Addr:    cfg.Server.Host + ":" + strconv.Itoa(cfg.Server.Port),
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("recapd started", "pod_id", cfg.PodID, "workers", cfg.Engine.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain workers first, then the HTTP server.
	// Runs that do not finish in time re-queue and resume from their trace.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Engine.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, unfinished runs will resume elsewhere")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
