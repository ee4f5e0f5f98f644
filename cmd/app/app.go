package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"scratchbook/internal/api"
	"scratchbook/internal/config"
	"scratchbook/internal/db"
	"scratchbook/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbPath := os.Getenv("SCRATCHBOOK_DB")
	if dbPath == "" {
		dbPath = conf.SQLite.Path
	}

	sqliteDB, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	s := api.NewServer(conf, sqliteDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
