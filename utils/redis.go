package utils

import "github.com/redis/go-redis/v9"

var redisClient *redis.Client

// SetRedis installs the shared redis client used by the cache and the
// token blacklist. A nil client disables both (they degrade gracefully).
func SetRedis(client *redis.Client) {
	redisClient = client
}

// GetRedis returns the shared redis client, or nil when not configured.
func GetRedis() *redis.Client {
	return redisClient
}
