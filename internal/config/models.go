package config

// SpamConfig represents the configuration for the classifier
type SpamConfig struct {
	Threshold int
}

// StorageConfig represents the configuration for the file store
type StorageConfig struct {
	BaseDir string
}

// MaintenanceConfig represents the configuration for the maintenance routines
type MaintenanceConfig struct {
	MaxAgeDays int
	BackupDir  string
}

// GetSpam returns the classifier configuration
func (c *Config) GetSpam() SpamConfig {
	return SpamConfig{
		Threshold: c.GetInt("spam.threshold"),
	}
}

// GetStorage returns the file store configuration
func (c *Config) GetStorage() StorageConfig {
	return StorageConfig{
		BaseDir: c.GetString("storage.base_dir"),
	}
}

// GetMaintenance returns the maintenance configuration
func (c *Config) GetMaintenance() MaintenanceConfig {
	return MaintenanceConfig{
		MaxAgeDays: c.GetInt("maintenance.max_age_days"),
		BackupDir:  c.GetString("maintenance.backup_dir"),
	}
}
