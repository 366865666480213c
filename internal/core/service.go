package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DetectionService is the core service for message classification. It
// scores each message, persists a result record, and appends an entry to
// the operation log. Processing is fully sequential.
type DetectionService struct {
	classifier   *Classifier
	store        ResultRepository
	cache        CacheRepository
	logger       *zap.Logger
	cacheEnabled bool
}

// NewDetectionService creates a new detection service
func NewDetectionService(
	classifier *Classifier,
	store ResultRepository,
	cache CacheRepository,
	logger *zap.Logger,
	cacheEnabled bool,
) *DetectionService {
	return &DetectionService{
		classifier:   classifier,
		store:        store,
		cache:        cache,
		logger:       logger,
		cacheEnabled: cacheEnabled && cache != nil,
	}
}

// ProcessMessage classifies a message, persists the result record, and
// logs the operation. The cache only short-circuits scoring; every
// processed message still produces a result record.
func (s *DetectionService) ProcessMessage(ctx context.Context, message string) (*Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result DetectionResult
	fromCache := false

	if s.cacheEnabled {
		if cached, ok := s.cache.Get(message); ok {
			s.logger.Debug("Cache hit for message", zap.Int("score", cached.Score))
			result = *cached
			fromCache = true
		}
	}

	if !fromCache {
		result = s.classifier.Classify(message)
		if s.cacheEnabled {
			s.cache.Set(message, result)
		}
	}

	path, err := s.store.SaveResult(message, result)
	if err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	details := fmt.Sprintf("Message: %s\nResult: %s (score %d)", message, result.Classification, result.Score)
	if err := s.store.LogOperation("Message Classification", details); err != nil {
		return nil, fmt.Errorf("failed to log operation: %w", err)
	}

	s.logger.Info("Classified message",
		zap.String("classification", result.Classification.String()),
		zap.Int("score", result.Score),
		zap.Bool("from_cache", fromCache),
		zap.String("result_path", path))

	return &Detection{
		Message:    message,
		Result:     result,
		ResultPath: path,
		FromCache:  fromCache,
	}, nil
}
