package redisfactory

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// One redis database for now. If the config cache ever needs to be broken
// up, introduce a new accessor instead of widening this one.

type Factory struct {
	configCache *redis.Client
}

func New() *Factory {
	opt, err := redis.ParseURL(os.Getenv("CONFIG_CACHE_REDIS_URI"))
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return &Factory{
		configCache: redis.NewClient(opt),
	}
}

// NewFromClient wires a pre-built client, used by tests with redismock.
func NewFromClient(configCache *redis.Client) *Factory {
	return &Factory{
		configCache: configCache,
	}
}

func (f *Factory) ConfigCacheClient() *redis.Client {
	return f.configCache
}
