package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"ara-be/internal/dto"

	"github.com/redis/go-redis/v9"
)

type ICoverageSummaryCache interface {
	// Get returns a nil summary on a cache miss, along with the current generation to pass to Set.
	Get(ctx context.Context, projectId int64) (*dto.CoverageSummaryResponse, int64, error)
	// Set stores the summary only if no invalidation happened since the generation was read.
	Set(ctx context.Context, projectId int64, generation int64, summary *dto.CoverageSummaryResponse) (bool, error)
	Invalidate(ctx context.Context, projectId int64) error
}

// KEYS: summary, generation. ARGV: expected generation, summary, ttl in ms (0 keeps it forever).
var setIfGeneration = redis.NewScript(`
if (redis.call('GET', KEYS[2]) or '0') ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

type coverageSummaryCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewCoverageSummaryCache(rdb redis.Cmdable, ttl time.Duration) ICoverageSummaryCache {
	return &coverageSummaryCache{rdb: rdb, ttl: ttl}
}

func CoverageSummaryKey(projectId int64) string {
	return fmt.Sprintf("coverage:summary:%d", projectId)
}

func CoverageGenerationKey(projectId int64) string {
	return fmt.Sprintf("coverage:summary:gen:%d", projectId)
}

func (c *coverageSummaryCache) Get(ctx context.Context, projectId int64) (*dto.CoverageSummaryResponse, int64, error) {
	values, err := c.rdb.MGet(ctx, CoverageSummaryKey(projectId), CoverageGenerationKey(projectId)).Result()
	if err != nil {
		return nil, 0, err
	}

	var generation int64
	if raw, ok := values[1].(string); ok {
		if generation, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, 0, fmt.Errorf("corrupt coverage generation for project %d: %w", projectId, err)
		}
	}

	raw, ok := values[0].(string)
	if !ok {
		return nil, generation, nil
	}
	var summary dto.CoverageSummaryResponse
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, generation, fmt.Errorf("corrupt coverage summary for project %d: %w", projectId, err)
	}
	return &summary, generation, nil
}

func (c *coverageSummaryCache) Set(ctx context.Context, projectId int64, generation int64, summary *dto.CoverageSummaryResponse) (bool, error) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return false, err
	}

	stored, err := setIfGeneration.Run(ctx, c.rdb,
		[]string{CoverageSummaryKey(projectId), CoverageGenerationKey(projectId)},
		strconv.FormatInt(generation, 10), raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

// Invalidate bumps the generation so that summaries computed before it are never stored.
func (c *coverageSummaryCache) Invalidate(ctx context.Context, projectId int64) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, CoverageGenerationKey(projectId))
		pipe.Del(ctx, CoverageSummaryKey(projectId))
		return nil
	})
	return err
}
