package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"seo-audit-backend/internal/audits"
	googleauth "seo-audit-backend/internal/auth"
	"seo-audit-backend/internal/benchmarks"
	"seo-audit-backend/internal/llm"
	openai "seo-audit-backend/internal/llm/openai"
	"seo-audit-backend/internal/options"
	"seo-audit-backend/internal/queue"
	"seo-audit-backend/internal/shared/config"
	"seo-audit-backend/internal/shared/server"
	"seo-audit-backend/internal/shared/storage/db"
	"seo-audit-backend/internal/shared/storage/object"
	localstore "seo-audit-backend/internal/shared/storage/object/local"
	s3store "seo-audit-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies for the API and the worker.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.ObjectStore
	Queue          queue.Client
	AuditsRepo     audits.Repo
	AuditsService  *audits.Service
	AuditProcessor AuditProcessor
	AuditHandler   *audits.Handler
	GoogleAuth     *googleauth.GoogleService
}

// AuditProcessor allows callers to override audit processing for tests.
type AuditProcessor interface {
	Process(ctx context.Context, auditID string) error
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       app.Config,
		AuditHandler: app.AuditHandler,
		GoogleAuth:   app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context, cfg config.Config) (queue.Client, error) {
	if strings.TrimSpace(cfg.SQSQueueURL) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx, cfg.SQSQueueURL, cfg.AWSRegion)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var repo audits.Repo
	if app.DB != nil {
		repo = &audits.PGRepo{DB: app.DB}
	} else {
		repo = audits.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" {
		openaiClient, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	}

	auditSvc := &audits.Service{
		Repo:          repo,
		Store:         app.Store,
		LLM:           llmClient,
		JobQueue:      app.Queue,
		Benchmarks:    benchmarks.Default(),
		Options:       options.Default(),
		PromptVersion: app.Config.PromptVersion,
	}

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
	)

	app.AuditsRepo = repo
	app.AuditsService = auditSvc
	app.AuditProcessor = auditSvc
	app.AuditHandler = audits.NewHandler(auditSvc)
	app.GoogleAuth = googleAuthSvc

	return nil
}
