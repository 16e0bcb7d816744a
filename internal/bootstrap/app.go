// Package bootstrap wires configuration, the snapshot backend and every
// dashboard service into one App the embedding UI layer holds onto.
package bootstrap

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/prodlens/prodlens-core/config"
	authcron "github.com/prodlens/prodlens-core/internal/auth/cron"
	authrepo "github.com/prodlens/prodlens-core/internal/auth/repository"
	authservice "github.com/prodlens/prodlens-core/internal/auth/service"
	billingservice "github.com/prodlens/prodlens-core/internal/billing/service"
	"github.com/prodlens/prodlens-core/internal/collection"
	dossierservice "github.com/prodlens/prodlens-core/internal/dossiers/service"
	projectservice "github.com/prodlens/prodlens-core/internal/projects/service"
	reportservice "github.com/prodlens/prodlens-core/internal/reports/service"
	settingsservice "github.com/prodlens/prodlens-core/internal/settings/service"
	"github.com/prodlens/prodlens-core/internal/storage"
	taskservice "github.com/prodlens/prodlens-core/internal/tasks/service"
	teamservice "github.com/prodlens/prodlens-core/internal/teams/service"
)

type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Store    storage.Store
	Projects *projectservice.ProjectService
	Tasks    *taskservice.TaskService
	Teams    *teamservice.TeamService
	Settings *settingsservice.SettingsService
	Dossiers *dossierservice.DossierService
	Reports  *reportservice.ReportService
	Auth     *authservice.Gateway
	Billing  *billingservice.PaymentService
	Janitor  *authcron.Janitor
}

func New(cfg *config.Config) (*App, error) {
	logger, err := newLogger(cfg.App.Environment)
	if err != nil {
		return nil, err
	}

	store, err := newStore(cfg.Storage)
	if err != nil {
		return nil, err
	}

	ids := collection.NewIDGenerator()

	users, err := authrepo.NewUserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to seed user table: %w", err)
	}
	sessions := authrepo.NewSessionRepository(store)
	tokens := authrepo.NewTokenRepository(store)

	app := &App{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Projects: projectservice.NewProjectService(store, ids, logger),
		Tasks:    taskservice.NewTaskService(store, ids, logger),
		Teams:    teamservice.NewTeamService(store, ids, logger),
		Settings: settingsservice.NewSettingsService(store, logger),
		Dossiers: dossierservice.NewDossierService(),
		Reports:  reportservice.NewReportService(logger),
		Auth:     authservice.NewGateway(users, sessions, tokens, ids, cfg.Auth, logger),
		Billing:  billingservice.NewPaymentService(cfg.Auth.DelayScale, logger),
		Janitor:  authcron.NewJanitor(sessions, tokens, logger),
	}
	return app, nil
}

// Start kicks off background maintenance.
func (a *App) Start() error {
	return a.Janitor.Start()
}

// Stop halts background maintenance and flushes the logger.
func (a *App) Stop() {
	a.Janitor.Stop()
	_ = a.Logger.Sync()
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return storage.NewRedisStore(client), nil
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}
