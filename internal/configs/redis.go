package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects the rate-limiter backend. Redis being down
// only disables rate limiting, but a bad address is a config error and
// fails startup.
func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
			ClientName:  "flowdesk",
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return redisClient
}
