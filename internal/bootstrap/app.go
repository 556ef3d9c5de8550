package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"therapy-backend/internal/assessments"
	googleauth "therapy-backend/internal/auth"
	"therapy-backend/internal/exercises"
	"therapy-backend/internal/recommend"
	"therapy-backend/internal/services/health"
	sharedauth "therapy-backend/internal/shared/auth"
	"therapy-backend/internal/shared/config"
	"therapy-backend/internal/shared/server"
	"therapy-backend/internal/shared/server/middleware"
	"therapy-backend/internal/shared/storage/db"
	"therapy-backend/internal/users"
)

// App holds the wired application dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Catalog           *exercises.Provider
	Engine            *recommend.Engine
	Tokens            *sharedauth.Tokens
	AssessmentsRepo   assessments.Repo
	UsersRepo         users.Repo
	AssessmentsSvc    *assessments.Service
	UsersSvc          *users.Service
	HealthSvc         *health.Service
	AssessmentHandler *assessments.Handler
	ExerciseHandler   *exercises.Handler
	UserHandler       *users.Handler
	GoogleAuth        *googleauth.GoogleService
}

// Build wires repositories, services and the router from config.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	catalog := buildCatalog(cfg)
	engine := recommend.NewEngine()
	tokens := sharedauth.NewTokens(cfg.JWTSecret, 24*time.Hour)

	var assessmentsRepo assessments.Repo
	var usersRepo users.Repo
	if sqlDB != nil {
		assessmentsRepo = &assessments.PGRepo{DB: sqlDB}
		usersRepo = &users.PGRepo{DB: sqlDB}
	} else {
		assessmentsRepo = assessments.NewMemoryRepo()
		usersRepo = users.NewMemoryRepo()
	}

	usersSvc := users.NewService(usersRepo)
	assessmentsSvc := assessments.NewService(assessmentsRepo, catalog, engine)
	healthSvc := health.NewService(catalog)
	googleAuth := googleauth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		tokens,
		usersSvc,
	)

	app := &App{
		Config:            cfg,
		DB:                sqlDB,
		Catalog:           catalog,
		Engine:            engine,
		Tokens:            tokens,
		AssessmentsRepo:   assessmentsRepo,
		UsersRepo:         usersRepo,
		AssessmentsSvc:    assessmentsSvc,
		UsersSvc:          usersSvc,
		HealthSvc:         healthSvc,
		AssessmentHandler: assessments.NewHandler(assessmentsSvc),
		ExerciseHandler:   exercises.NewHandler(catalog),
		UserHandler:       users.NewHandler(usersSvc),
		GoogleAuth:        googleAuth,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		Tokens:            app.Tokens,
		AssessmentHandler: app.AssessmentHandler,
		ExerciseHandler:   app.ExerciseHandler,
		UserHandler:       app.UserHandler,
		GoogleAuth:        app.GoogleAuth,
		Health:            app.HealthSvc,
		RateLimitRules: map[string]middleware.RateLimitRule{
			"RECOMMEND": {Rate: 2, Burst: 10},
		},
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

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildCatalog(cfg config.Config) *exercises.Provider {
	client := exercises.NewClient(cfg.CatalogURL, cfg.CatalogTimeout)
	var store *exercises.SnapshotStore
	if strings.TrimSpace(cfg.CatalogCacheDir) != "" {
		store = exercises.NewSnapshotStore(cfg.CatalogCacheDir)
	}
	return exercises.NewProvider(client, store, cfg.CatalogCacheTTL)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
