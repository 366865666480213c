package di

import (
	"flag"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/karthikv/spam-detector/internal/config"
	"github.com/karthikv/spam-detector/internal/logging"
	"github.com/karthikv/spam-detector/internal/maintenance"
)

// MaintenanceFlags contains all command line flags for the maintenance tool
type MaintenanceFlags struct {
	Dir        string
	MaxAgeDays int
	BackupDir  string
	Cleanup    bool
	Backup     bool
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseMaintenanceFlags parses command line flags and returns a MaintenanceFlags struct
func ParseMaintenanceFlags() *MaintenanceFlags {
	flags := &MaintenanceFlags{}

	flag.StringVar(&flags.Dir, "dir", "data", "Directory tree to maintain")
	flag.IntVar(&flags.MaxAgeDays, "max-age-days", 7, "Delete files older than this many days during cleanup")
	flag.StringVar(&flags.BackupDir, "backup-dir", ".", "Directory to write backup archives into")
	flag.BoolVar(&flags.Cleanup, "cleanup", false, "Run the age-based cleanup sweep")
	flag.BoolVar(&flags.Backup, "backup", false, "Create a backup archive of the directory tree")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildMaintenanceContainer creates and configures a dependency injection
// container for the maintenance tool
func BuildMaintenanceContainer(flags *MaintenanceFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *MaintenanceFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *MaintenanceFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *MaintenanceFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		v := config.NewEmptyViper()
		v.Set("storage.base_dir", flags.Dir)
		v.Set("maintenance.max_age_days", flags.MaxAgeDays)
		v.Set("maintenance.backup_dir", flags.BackupDir)
		return config.NewFromViper(v), nil
	}); err != nil {
		return nil, err
	}

	// Register maintainer
	if err := container.Provide(maintenance.NewMaintainer); err != nil {
		return nil, err
	}

	return container, nil
}
