package store_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karthikv/spam-detector/internal/adapters/store"
	"github.com/karthikv/spam-detector/internal/core"
)

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	s := store.NewFileStore(filepath.Join(t.TempDir(), "data"), zap.NewNop())
	require.NoError(t, s.SetupEnvironment())
	return s
}

func TestSetupEnvironmentIdempotent(t *testing.T) {
	base := filepath.Join(t.TempDir(), "data")
	s := store.NewFileStore(base, zap.NewNop())

	require.NoError(t, s.SetupEnvironment())
	require.NoError(t, s.SetupEnvironment())

	for _, dir := range []string{base, filepath.Join(base, "input"), filepath.Join(base, "output"), filepath.Join(base, "logs")} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
}

func TestSaveResultRoundTrip(t *testing.T) {
	s := newTestStore(t)

	message := "WINNER!! Claim your £900 prize reward!"
	result := core.DetectionResult{Classification: core.ClassSpam, Score: 5}

	path, err := s.SaveResult(message, result)
	require.NoError(t, err)
	assert.Equal(t, s.OutputDir(), filepath.Dir(path))
	assert.Regexp(t, `^result_\d{8}_\d{6}(_[0-9a-f]{8})?\.json$`, filepath.Base(path))

	record, err := s.LoadResult(path)
	require.NoError(t, err)
	assert.Equal(t, message, record.Message)
	assert.Equal(t, "SPAM", record.Classification)
	assert.Equal(t, 5, record.Score)
	assert.NotEmpty(t, record.Timestamp)
}

func TestSaveResultUsesTwoSpaceIndent(t *testing.T) {
	s := newTestStore(t)

	path, err := s.SaveResult("hello", core.DetectionResult{Classification: core.ClassNotSpam, Score: 0})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "{\n  \"timestamp\"")
	assert.Contains(t, string(data), "\n  \"score\": 0")
}

func TestSaveResultAvoidsSameSecondCollision(t *testing.T) {
	s := newTestStore(t)

	result := core.DetectionResult{Classification: core.ClassNotSpam, Score: 0}
	paths := map[string]bool{}
	for i := 0; i < 5; i++ {
		path, err := s.SaveResult("hello", result)
		require.NoError(t, err)
		paths[path] = true
	}
	assert.Len(t, paths, 5)

	entries, err := os.ReadDir(s.OutputDir())
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestLogOperationAppends(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.LogOperation("Message Classification", "Message: hi\nResult: NOT SPAM (score 0)"))
	require.NoError(t, s.LogOperation("Backup", "Archive: backup_20250101_000000.zip"))

	data, err := os.ReadFile(filepath.Join(s.BaseDir(), "logs", "system_log.txt"))
	require.NoError(t, err)
	content := string(data)

	// entries keep append order
	first := strings.Index(content, "Message Classification")
	second := strings.Index(content, "Backup")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)

	entryFormat := regexp.MustCompile(`(?m)^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] Backup\nDetails: Archive: backup_20250101_000000\.zip\n-{50}\n`)
	assert.Regexp(t, entryFormat, content)
	assert.Equal(t, 2, strings.Count(content, strings.Repeat("-", 50)))
}

func TestLoadResultMissingFile(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LoadResult(filepath.Join(s.OutputDir(), "result_nope.json"))
	assert.Error(t, err)
}
