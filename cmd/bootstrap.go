package cmd

import (
	"fmt"

	"player-enricher/core/config"
	"player-enricher/core/database"
	"player-enricher/core/logger"
	"player-enricher/core/metrics"
	"player-enricher/core/storage"
	"player-enricher/feature/players"
	"player-enricher/feature/players/valuation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env is what every command needs before it can do anything.
type env struct {
	cfg   *config.Config
	logg  *zap.Logger
	store storage.Client
	db    *gorm.DB
}

// bootstrap loads configuration, builds the logger and storage client and
// connects to the sink. When requireDB is false a failed connection is only
// logged.
func bootstrap(requireDB bool) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		if requireDB {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
		logg = logg.With(zap.String("sink", cfg.Database.Driver))
	}

	return &env{cfg: cfg, logg: logg, store: store, db: db}, nil
}

// playersService wires the pipeline service from the environment.
func (e *env) playersService(m *metrics.Manager) *players.Service {
	values := valuation.NewClient(e.cfg.Valuation, nil)
	return players.NewService(e.store, e.cfg.Storage.Bucket, e.logg, e.db, e.cfg.Pipeline, values, m)
}
