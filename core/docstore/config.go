package docstore

const (
	BackendDatabase = "database"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Config selects and configures the document store backend.
type Config struct {
	// Backend is one of database, redis or memory.
	Backend string `mapstructure:"backend" default:"database" validate:"oneof=database redis memory"`
	// Redis holds connection settings for the redis backend.
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	// Addr is host:port of the Redis server.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the optional AUTH password.
	Password string `mapstructure:"password" default:""`
	// DB is the logical database index.
	DB int `mapstructure:"db" default:"0" validate:"gte=0"`
	// Prefix namespaces every key written by the store.
	Prefix string `mapstructure:"prefix" default:"afmg"`
}
