// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campusbridge/internhub/internal/cache"
	"github.com/campusbridge/internhub/internal/domain"
)

// CacheService provides caching for derived read views (notification
// lists, dashboard aggregates) with type safety and error handling.
type CacheService struct {
	cache *cache.InMemoryCache
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
}

// NewCacheService creates a new cache service
func NewCacheService(config CacheConfig) *CacheService {
	c := cache.NewInMemoryCache(config.TTL, config.CleanupFreq)

	// Start the cleanup routine
	ctx := context.Background()
	c.StartCleanup(ctx)

	return &CacheService{cache: c}
}

// Set stores a value in the cache
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.cache.Set(ctx, key, value)
	return nil
}

// Get retrieves a value from the cache with type conversion
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	value, found := s.cache.Get(ctx, key)
	if !found {
		return domain.ErrNotFound
	}

	switch v := value.(type) {
	case []byte:
		if err := json.Unmarshal(v, result); err != nil {
			return fmt.Errorf("unmarshaling cached value: %w", err)
		}
	default:
		if err := assignValue(value, result); err != nil {
			return fmt.Errorf("assigning cached value: %w", err)
		}
	}

	return nil
}

// Delete removes a value from the cache
func (s *CacheService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.cache.Delete(ctx, key)
	return nil
}

// Close stops the cleanup routine
func (s *CacheService) Close() {
	s.cache.StopCleanup()
}

// assignValue handles type conversion for different types
func assignValue(src interface{}, dst interface{}) error {
	if v, ok := dst.(*interface{}); ok {
		*v = src
		return nil
	}

	// Convert to JSON and back for complex types
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshaling value: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshaling value: %w", err)
	}

	return nil
}
