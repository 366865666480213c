package di

import (
	"flag"
	"os"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/karthikv/spam-detector/internal/adapters/cache"
	"github.com/karthikv/spam-detector/internal/adapters/store"
	"github.com/karthikv/spam-detector/internal/config"
	"github.com/karthikv/spam-detector/internal/core"
	"github.com/karthikv/spam-detector/internal/logging"
	"github.com/karthikv/spam-detector/internal/maintenance"
	"github.com/karthikv/spam-detector/internal/report"
)

// DetectorFlags contains all command line flags for the detector pipeline
type DetectorFlags struct {
	// Spam detection flags
	Threshold int

	// Storage flags
	BaseDir string

	// Input flags
	InputFile  string
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseDetectorFlags parses command line flags and returns a DetectorFlags struct
func ParseDetectorFlags() *DetectorFlags {
	flags := &DetectorFlags{}

	flag.IntVar(&flags.Threshold, "threshold", core.DefaultThreshold, "Minimum score at which a message is classified spam")
	flag.StringVar(&flags.BaseDir, "base-dir", "data", "Base directory for the result store")
	flag.StringVar(&flags.InputFile, "file", "", "Input file with one message per line (built-in demo messages if not specified)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildDetectorContainer creates and configures a dependency injection
// container for the detector pipeline
func BuildDetectorContainer(flags *DetectorFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *DetectorFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *DetectorFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *DetectorFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		// Create config from command line flags
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// Register classifier
	if err := container.Provide(func(cfg *config.Config) *core.Classifier {
		return core.NewClassifier(core.DefaultIndicators, cfg.GetSpam().Threshold)
	}); err != nil {
		return nil, err
	}

	// Register result store
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *store.FileStore {
		return store.NewFileStore(cfg.GetStorage().BaseDir, logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(s *store.FileStore) core.ResultRepository { return s }); err != nil {
		return nil, err
	}

	// Register cache
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) (core.CacheRepository, error) {
		ttl, err := cfg.GetDuration("cache.ttl")
		if err != nil {
			return nil, err
		}
		cleanupFreq, err := cfg.GetDuration("cache.cleanup_frequency")
		if err != nil {
			return nil, err
		}
		return cache.NewMemoryCache(ttl, cleanupFreq, logger), nil
	}); err != nil {
		return nil, err
	}

	// Register detection service
	if err := container.Provide(func(
		classifier *core.Classifier,
		repo core.ResultRepository,
		cacheRepo core.CacheRepository,
		cfg *config.Config,
		logger *zap.Logger,
	) *core.DetectionService {
		return core.NewDetectionService(classifier, repo, cacheRepo, logger, cfg.GetBool("cache.enabled"))
	}); err != nil {
		return nil, err
	}

	// Register maintainer
	if err := container.Provide(maintenance.NewMaintainer); err != nil {
		return nil, err
	}

	// Register console reporter
	if err := container.Provide(func(logger *zap.Logger, flags *DetectorFlags) *report.ConsoleReporter {
		return report.NewConsoleReporter(os.Stdout, logger, flags.Verbose)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *DetectorFlags) *config.Config {
	v := config.NewEmptyViper()

	v.Set("spam.threshold", flags.Threshold)
	v.Set("storage.base_dir", flags.BaseDir)

	return config.NewFromViper(v)
}
