package cache

import "strings"

const (
	GlobalKeyPrefix = "viaproposito"

	statsService = "stats"
)

// Dashboard payloads cached by the stats service.
const (
	StatsOverview = "overview"
	StatsBasic    = "basic"
	StatsByDay    = "by_day"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// StatsKey is the cache key of one dashboard payload.
func StatsKey(kind string) string {
	return GenerateCacheKey(statsService, "dashboard", kind)
}

// StatsKeys lists every dashboard key. A new submission invalidates all of them.
func StatsKeys() []string {
	return []string{StatsKey(StatsOverview), StatsKey(StatsBasic), StatsKey(StatsByDay)}
}
