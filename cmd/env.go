package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/config"
	"github.com/abhisek/lexiz/internal/logger"
	"github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/store"
)

// appEnv bundles what every command needs: resolved config, logger,
// open store and the session service on top of it.
type appEnv struct {
	cfg   *config.Config
	log   *logger.Logger
	store *store.Store
	svc   *session.Service
}

func (e *appEnv) Close() {
	e.log.Sync()
	_ = e.store.Close()
}

// openEnv loads config (defaults, file, env, then flags), builds the logger
// and opens the store.
func openEnv(cmd *cobra.Command) (*appEnv, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{File: cfgFile, Flags: cmd.Flags()})
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", "path", dbPath)

	svc := session.NewService(st.TableRepo(), st.QueueRepo(), st.EventRepo(), log, nil)
	return &appEnv{cfg: cfg, log: log, store: st, svc: svc}, nil
}

// resolveDBPath returns the configured database path (from --db, config file
// or LEXIZ_DB), falling back to the default XDG path.
func resolveDBPath(configured string) (string, error) {
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
