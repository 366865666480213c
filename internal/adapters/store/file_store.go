package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/karthikv/spam-detector/internal/core"
)

const (
	// fileTimestampLayout is used for result and backup file names
	fileTimestampLayout = "20060102_150405"
	// logTimestampLayout is used for operation log entries
	logTimestampLayout = "2006-01-02 15:04:05"

	logFileName = "system_log.txt"
)

// FileStore is a flat-file implementation of the ResultRepository
// interface. Result records are written as one JSON file each under the
// output directory; operations are appended to a shared plaintext log.
type FileStore struct {
	baseDir   string
	inputDir  string
	outputDir string
	logsDir   string
	logger    *zap.Logger
}

// NewFileStore creates a new file store rooted at baseDir
func NewFileStore(baseDir string, logger *zap.Logger) *FileStore {
	return &FileStore{
		baseDir:   baseDir,
		inputDir:  filepath.Join(baseDir, "input"),
		outputDir: filepath.Join(baseDir, "output"),
		logsDir:   filepath.Join(baseDir, "logs"),
		logger:    logger,
	}
}

// BaseDir returns the root of the store's directory tree
func (s *FileStore) BaseDir() string {
	return s.baseDir
}

// OutputDir returns the directory result records are written to
func (s *FileStore) OutputDir() string {
	return s.outputDir
}

// SetupEnvironment idempotently creates the store's directory layout
func (s *FileStore) SetupEnvironment() error {
	for _, dir := range []string{s.baseDir, s.inputDir, s.outputDir, s.logsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	s.logger.Debug("Environment ready", zap.String("base_dir", s.baseDir))
	return nil
}

// SaveResult serializes one result record to its own JSON file and
// returns the path. File names are derived from the current timestamp;
// when two saves land in the same second, a short random token is
// appended so the earlier record is not overwritten.
func (s *FileStore) SaveResult(message string, result core.DetectionResult) (string, error) {
	timestamp := time.Now().Format(fileTimestampLayout)
	path := filepath.Join(s.outputDir, fmt.Sprintf("result_%s.json", timestamp))
	if _, err := os.Stat(path); err == nil {
		token := uuid.NewString()[:8]
		path = filepath.Join(s.outputDir, fmt.Sprintf("result_%s_%s.json", timestamp, token))
	}

	record := core.ResultRecord{
		Timestamp:      timestamp,
		Message:        message,
		Classification: result.Classification.String(),
		Score:          result.Score,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize result record: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write result file: %w", err)
	}

	s.logger.Debug("Saved result record", zap.String("path", path))
	return path, nil
}

// LoadResult reads a previously saved result record back from disk
func (s *FileStore) LoadResult(path string) (*core.ResultRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read result file: %w", err)
	}

	var record core.ResultRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse result file %s: %w", path, err)
	}

	return &record, nil
}

// LogOperation appends one formatted entry to the shared operation log.
// Prior content is never truncated or rewritten.
func (s *FileStore) LogOperation(operation, details string) error {
	logPath := filepath.Join(s.logsDir, logFileName)
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open operation log: %w", err)
	}
	defer f.Close()

	timestamp := time.Now().Format(logTimestampLayout)
	entry := fmt.Sprintf("[%s] %s\nDetails: %s\n%s\n", timestamp, operation, details, strings.Repeat("-", 50))
	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("failed to append to operation log: %w", err)
	}

	return nil
}
