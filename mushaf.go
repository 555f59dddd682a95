// Package mushaf is the application core of a Quran reading and search
// client. It wires the remote content client, the local snapshot store and
// the two state stores into one explicit context object that a
// presentation layer reads from and acts through.
package mushaf

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hmaged/mushaf/internal/alquran"
	"github.com/hmaged/mushaf/internal/config"
	"github.com/hmaged/mushaf/internal/storage"
	"github.com/hmaged/mushaf/internal/store"
)

// App bundles the application state. Construct one at startup and pass it
// by reference; there are no package-level singletons.
type App struct {
	Content *store.ContentStore
	User    *store.UserDataStore

	snapshots *storage.Store
	logger    *zap.Logger
}

// New builds the application core. A nil cfg uses defaults; a nil logger
// disables logging.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	snapshots, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}

	client := alquran.NewClient(cfg.API.BaseURL, cfg.API.Timeout, cfg.API.UserAgent, logger)

	return &App{
		Content:   store.NewContentStore(client, snapshots, logger),
		User:      store.NewUserDataStore(snapshots, logger),
		snapshots: snapshots,
		logger:    logger,
	}, nil
}

// Close releases the snapshot database.
func (a *App) Close() error {
	return a.snapshots.Close()
}
