package core

// ResultRepository defines the interface for persisting detection results
type ResultRepository interface {
	// SetupEnvironment creates the directory layout the repository writes
	// into. Safe to call repeatedly.
	SetupEnvironment() error

	// SaveResult persists one result record and returns the path it was
	// written to
	SaveResult(message string, result DetectionResult) (string, error)

	// LogOperation appends one entry to the shared operation log
	LogOperation(operation, details string) error
}

// CacheRepository defines the interface for caching detection results
// keyed by message text
type CacheRepository interface {
	// Get retrieves a cached result for a message
	Get(message string) (*DetectionResult, bool)

	// Set stores a result for a message
	Set(message string, result DetectionResult)
}
