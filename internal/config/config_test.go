package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikv/spam-detector/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.NewFromViper(config.NewEmptyViper())

	assert.Equal(t, 2, cfg.GetSpam().Threshold)
	assert.Equal(t, "data", cfg.GetStorage().BaseDir)
	assert.Equal(t, 7, cfg.GetMaintenance().MaxAgeDays)
	assert.Equal(t, ".", cfg.GetMaintenance().BackupDir)
	assert.True(t, cfg.GetBool("cache.enabled"))
	assert.Equal(t, "info", cfg.GetString("logging.level"))

	ttl, err := cfg.GetDuration("cache.ttl")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestOverrides(t *testing.T) {
	v := config.NewEmptyViper()
	v.Set("spam.threshold", 4)
	v.Set("storage.base_dir", "/tmp/spool")
	v.Set("maintenance.max_age_days", 30)
	cfg := config.NewFromViper(v)

	assert.Equal(t, 4, cfg.GetSpam().Threshold)
	assert.Equal(t, "/tmp/spool", cfg.GetStorage().BaseDir)
	assert.Equal(t, 30, cfg.GetMaintenance().MaxAgeDays)
}

func TestGetDurationInvalid(t *testing.T) {
	v := config.NewEmptyViper()
	v.Set("cache.ttl", "not-a-duration")
	cfg := config.NewFromViper(v)

	_, err := cfg.GetDuration("cache.ttl")
	assert.Error(t, err)
}
