package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/annuyadav31/CRUDExample/internal/bootstrap"
	"github.com/annuyadav31/CRUDExample/internal/infrastructure/persistence"
	"github.com/annuyadav31/CRUDExample/internal/pkg/config"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const configFlag = "config"

// InitRootFlags registers the flags shared by every command
func InitRootFlags(rootCmd *cobra.Command) error {
	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = "configs/rest-app.yaml"
	}
	rootCmd.PersistentFlags().StringP(configFlag, "c", defaultPath, "Path to the YAML config file")
	return nil
}

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// session is an open database together with the services built on it
type session struct {
	db       *gorm.DB
	services *bootstrap.Services
	logger   logger.Logger
}

func (s *session) Close() {
	if err := persistence.CloseDB(s.db); err != nil {
		s.logger.Warn(fmt.Sprintf("failed to close database: %v", err))
	}
}

// openSession loads the config named by --config and opens the database
func openSession(cmd *cobra.Command, seed bool) (*session, error) {
	log, err := setupLogger()
	if err != nil {
		return nil, err
	}

	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", configFlag, err)
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := bootstrap.OpenDatabase(commandContext(cmd), cfg.Database, seed, log)
	if err != nil {
		return nil, err
	}

	services, err := bootstrap.NewServices(db, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}

	return &session{db: db, services: services, logger: log}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
