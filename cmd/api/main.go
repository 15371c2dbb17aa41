package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/assets"
	"github.com/fhuszti/captions-ms-go/internal/cache"
	"github.com/fhuszti/captions-ms-go/internal/catalog"
	"github.com/fhuszti/captions-ms-go/internal/config"
	"github.com/fhuszti/captions-ms-go/internal/db"
	"github.com/fhuszti/captions-ms-go/internal/handler/api"
	"github.com/fhuszti/captions-ms-go/internal/inference"
	"github.com/fhuszti/captions-ms-go/internal/logger"
	cMiddleware "github.com/fhuszti/captions-ms-go/internal/middleware"
	"github.com/fhuszti/captions-ms-go/internal/port"
	"github.com/fhuszti/captions-ms-go/internal/renderer"
	"github.com/fhuszti/captions-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/captions-ms-go/internal/repository/memory"
	"github.com/fhuszti/captions-ms-go/internal/storage"
	"github.com/fhuszti/captions-ms-go/internal/task"
	mediaSvc "github.com/fhuszti/captions-ms-go/internal/usecase/media"
	msuuid "github.com/fhuszti/captions-ms-go/internal/uuid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	inferenceLoadTimeout = 10 * time.Second
	inferenceCallTimeout = 2 * time.Minute
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)
	records := initRecordStore(ctx, database)

	deps := mediaSvc.Deps{
		Inference: initInference(ctx, cfg),
		Records:   records,
		Samples:   initSamples(ctx, cfg),
	}
	if strg := initStorage(ctx, cfg); strg != nil {
		deps.Store = strg
	}

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if rc := initRedisCache(ctx, cfg); rc != nil {
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		if database != nil {
			ca = rc
			logger.Info(ctx, "✅  Redis cache enabled")
		} else {
			// a shared cache would outlive the in-memory records
			_ = rc.Close()
			ca = cache.NewNoop()
			logger.Info(ctx, "records are kept in memory, the records listing is not cached")
		}
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not available, caching and media optimisation are disabled")
	}
	deps.Cache = ca
	deps.Tasks = dispatcher

	pipeline := mediaSvc.NewPipeline(deps, cfg.Tiers)
	logActiveTiers(ctx, pipeline.ActiveTiers())

	r := initRouter(ctx)
	rendererSvc := renderer.NewHTTPRenderer(ca, cfg.RecordsCacheTTL)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", api.HealthHandler(pipeline))

		r.Group(func(r chi.Router) {
			r.Use(cMiddleware.WithJWTAuth(cfg.JWTSecret))
			r.Use(cMiddleware.WithMaxBodySize(cfg.MaxUploadBytes))

			r.Post("/generate-caption", api.GenerateCaptionHandler(pipeline))
			r.Post("/generate-image", api.GenerateImageHandler(pipeline))
			r.Post("/video-caption", api.VideoCaptionHandler(pipeline))
			r.Post("/animated-video", api.AnimatedVideoHandler(pipeline))
			r.Get("/records", api.ListRecordsHandler(rendererSvc, pipeline))
		})
	})

	listenRouter(ctx, r, cfg, database, dispatcher)
}

// initDb returns nil when no DSN is configured or MariaDB is unreachable.
func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	if cfg.MariaDBDSN == "" {
		return nil
	}
	logger.Info(ctx, "initialising database...")

	database, err := db.New(ctx, cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Warnf(ctx, "⚠️  Failed to connect to db, records will be kept in memory: %v", err)
		return nil
	}

	return database
}

func initRecordStore(ctx context.Context, database *db.Database) port.RecordStore {
	if database == nil {
		logger.Warn(ctx, "⚠️  Records are kept in memory and lost on restart")
		return memory.NewRecordRepository(msuuid.NewUUID)
	}
	logger.Info(ctx, "✅  Records are stored in MariaDB")
	return mariadb.NewRecordRepository(database.DB, msuuid.NewUUID)
}

// initStorage returns nil when MinIO is not configured or its buckets cannot
// be prepared; the upload tier is then skipped.
func initStorage(ctx context.Context, cfg *config.Settings) *storage.Storage {
	if cfg.MinioEndpoint == "" {
		logger.Warn(ctx, "⚠️  MinIO not configured, media will be returned inline")
		return nil
	}

	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioPublicURL,
		storage.Buckets{Images: cfg.BucketImages, Videos: cfg.BucketVideos},
	)
	if err != nil {
		logger.Warnf(ctx, "⚠️  Failed to initialize MinIO client: %v", err)
		return nil
	}

	for _, b := range cfg.Buckets() {
		if err := strg.InitBucket(b); err != nil {
			logger.Warnf(ctx, "⚠️  Failed to initialize bucket %q: %v", b, err)
			return nil
		}
	}

	return strg
}

// initSamples serves the bundled samples unless SAMPLE_ASSETS_DIR holds
// every sample the catalog names.
func initSamples(ctx context.Context, cfg *config.Settings) *assets.Samples {
	if cfg.SampleAssetsDir == "" {
		return assets.NewDefaultSamples()
	}

	var names []string
	for _, name := range catalog.NewDefault().SampleImages {
		names = append(names, name)
	}
	s := assets.NewDirSamples(cfg.SampleAssetsDir)
	if missing := s.Missing(names...); len(missing) > 0 {
		logger.Warnf(ctx, "⚠️  %s lacks samples %v, serving the bundled ones", cfg.SampleAssetsDir, missing)
		return assets.NewDefaultSamples()
	}
	return s
}

func initRedisCache(ctx context.Context, cfg *config.Settings) *cache.Cache {
	if cfg.RedisAddr == "" {
		return nil
	}
	rc := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
	if err := rc.Ping(ctx); err != nil {
		logger.Warnf(ctx, "⚠️  Redis ping failed: %v", err)
		_ = rc.Close()
		return nil
	}
	return rc
}

func initInference(ctx context.Context, cfg *config.Settings) *inference.Provider {
	httpClient := &http.Client{Timeout: inferenceCallTimeout}

	var c inference.Captioner
	if cfg.OllamaHost != "" {
		oc, err := inference.NewOllamaCaptioner(cfg.OllamaHost, cfg.CaptionModel, httpClient)
		if err != nil {
			logger.Warnf(ctx, "⚠️  Invalid OLLAMA_HOST: %v", err)
		} else {
			c = oc
		}
	}

	var s inference.Synthesizer
	if cfg.SynthURL != "" {
		s = inference.NewHTTPSynthesizer(cfg.SynthURL, cfg.SynthModel, httpClient)
	}

	loadCtx, cancel := context.WithTimeout(ctx, inferenceLoadTimeout)
	defer cancel()
	return inference.Load(loadCtx, c, s)
}

func logActiveTiers(ctx context.Context, t mediaSvc.Tiers) {
	logger.Info(ctx, "active tiers",
		"inference", t.Inference,
		"upload", t.Upload,
		"inline_fallback", t.InlineFallback,
		"persistence", t.Persistence,
	)
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(cMiddleware.WithRequestID())
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database, dispatcher port.TaskDispatcher) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if d, ok := dispatcher.(*task.Dispatcher); ok {
		if err := d.Close(); err != nil {
			logger.Warnf(ctx, "Task client close error: %v", err)
		}
	}

	if database != nil {
		if err := database.Close(); err != nil {
			logger.Errorf(ctx, "DB close error: %v", err)
			os.Exit(1)
		}
	}
}
