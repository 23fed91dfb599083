package cmd

import (
	"fmt"

	"whitecore/core/config"
	"whitecore/core/database"
	"whitecore/core/gamedata"
	"whitecore/core/logger"
	"whitecore/core/storage"
	"whitecore/feature/inject"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env bundles what every command builds from the configuration.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  storage.Client
	source gamedata.Source
	db     *gorm.DB
	ledger *inject.Ledger
}

// newEnv loads the configuration and builds the logger, storage client and source.
// With withDB it also connects the ledger database; a failed connection is only logged.
func newEnv(withDB bool) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if !cfg.Mod.IsValidSource() {
		return nil, fmt.Errorf("invalid mod source %q", cfg.Mod.Source)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	source, err := gamedata.NewSource(cfg.Mod, store, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, logger: logg, store: store, source: source}
	if !withDB {
		return e, nil
	}

	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		e.db = conn
	}
	return e, nil
}

// openLedger migrates the ledger tables. Runs are not recorded when it fails.
func (e *env) openLedger() {
	if e.db == nil {
		e.logger.Warn("No database, runs will not be recorded")
		return
	}
	ledger := inject.NewLedger(e.db)
	if err := ledger.Migrate(); err != nil {
		e.logger.Warn("Failed to migrate run ledger", zap.Error(err))
		return
	}
	e.ledger = ledger
}

func (e *env) injectService() *inject.Service {
	return inject.NewService(e.cfg.Mod, e.source, e.ledger, e.logger)
}

// traderIDs returns the configured trader ids in name order.
func (e *env) traderIDs() ([]string, error) {
	refs, err := e.cfg.Mod.TraderRefs()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	return ids, nil
}
