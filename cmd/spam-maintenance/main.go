package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/karthikv/spam-detector/internal/config"
	"github.com/karthikv/spam-detector/internal/di"
	"github.com/karthikv/spam-detector/internal/maintenance"
)

func main() {
	flags := di.ParseMaintenanceFlags()

	container, err := di.BuildMaintenanceContainer(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the requested maintenance routines in order: backup
// first, then cleanup, so the archive still contains what the sweep is
// about to delete
func run(
	logger *zap.Logger,
	cfg *config.Config,
	flags *di.MaintenanceFlags,
	maintainer *maintenance.Maintainer,
) error {
	defer logger.Sync()

	if !flags.Backup && !flags.Cleanup {
		return fmt.Errorf("nothing to do: pass -backup and/or -cleanup")
	}

	dir := cfg.GetStorage().BaseDir
	mcfg := cfg.GetMaintenance()

	if flags.Backup {
		archive, err := maintainer.BackupData(dir, mcfg.BackupDir)
		if err != nil {
			return err
		}
		fmt.Printf("Backup created: %s\n", archive)
	}

	if flags.Cleanup {
		removed, skipped, err := maintainer.CleanupOldFiles(dir, mcfg.MaxAgeDays)
		if err != nil {
			return err
		}
		fmt.Printf("Cleanup complete: %d removed, %d skipped\n", len(removed), len(skipped))
		if len(skipped) > 0 {
			logger.Warn("Cleanup skipped some paths", zap.Strings("paths", skipped))
		}
	}

	return nil
}
