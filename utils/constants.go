// File: utils/constants.go
package utils

// ServiceCachePrefix is the prefix used for Redis service cache keys.
const ServiceCachePrefix = "service:"

// ServiceCacheKey builds the Redis key for a cached service document.
func ServiceCacheKey(serviceID string) string {
	return ServiceCachePrefix + serviceID
}
