package memory

import (
	"maps"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// ProjectSettingCache keeps the stored setting values of each project, keyed by setting code.
type ProjectSettingCache struct {
	cache *cache.Cache
}

func NewProjectSettingCache(expiration time.Duration) *ProjectSettingCache {
	return &ProjectSettingCache{
		cache: cache.New(expiration, 2*expiration),
	}
}

func key(projectId int64) string {
	return strconv.FormatInt(projectId, 10)
}

// Save stores a copy of values.
func (r *ProjectSettingCache) Save(projectId int64, values map[string]string) {
	r.cache.Set(key(projectId), maps.Clone(values), cache.DefaultExpiration)
}

// Get returns a copy, so callers may not alter the cached map.
func (r *ProjectSettingCache) Get(projectId int64) (map[string]string, bool) {
	if x, found := r.cache.Get(key(projectId)); found {
		return maps.Clone(x.(map[string]string)), true
	}
	return nil, false
}

func (r *ProjectSettingCache) Delete(projectId int64) {
	r.cache.Delete(key(projectId))
}
