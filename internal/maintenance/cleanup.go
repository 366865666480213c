package maintenance

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Maintainer runs age-based cleanup sweeps and backup snapshots over the
// data directory tree
type Maintainer struct {
	logger *zap.Logger
}

// NewMaintainer creates a new maintainer
func NewMaintainer(logger *zap.Logger) *Maintainer {
	return &Maintainer{
		logger: logger,
	}
}

// CleanupOldFiles recursively deletes files under directory whose
// last-modified time is older than maxAgeDays relative to now. Failures
// on individual files do not abort the sweep; such paths are collected
// and returned as skipped. Directories themselves are never removed.
func (m *Maintainer) CleanupOldFiles(directory string, maxAgeDays int) (removed, skipped []string, err error) {
	cutoff := time.Now().Add(-time.Duration(maxAgeDays) * 24 * time.Hour)

	walkErr := filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == directory {
				return err
			}
			m.logger.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(err))
			skipped = append(skipped, path)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			m.logger.Warn("Skipping unstattable file", zap.String("path", path), zap.Error(err))
			skipped = append(skipped, path)
			return nil
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				m.logger.Warn("Failed to remove old file", zap.String("path", path), zap.Error(err))
				skipped = append(skipped, path)
				return nil
			}
			removed = append(removed, path)
		}
		return nil
	})
	if walkErr != nil {
		return removed, skipped, fmt.Errorf("cleanup sweep of %s failed: %w", directory, walkErr)
	}

	m.logger.Info("Cleanup sweep complete",
		zap.String("directory", directory),
		zap.Int("max_age_days", maxAgeDays),
		zap.Int("removed", len(removed)),
		zap.Int("skipped", len(skipped)))

	return removed, skipped, nil
}
