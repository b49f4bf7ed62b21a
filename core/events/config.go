package events

import "strings"

// Config holds Kafka producer configuration.
type Config struct {
	// Enabled turns event publishing on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Brokers is a comma separated list of host:port pairs.
	Brokers string `mapstructure:"brokers" default:"localhost:9092"`
	// Topic receives one event per reconciled collection.
	Topic string `mapstructure:"topic" default:"afmg.reconcile"`
	// BatchTimeoutMs is how long the writer waits to fill a batch.
	BatchTimeoutMs int `mapstructure:"batch_timeout_ms" default:"50" validate:"gte=0"`
	// Compression is one of snappy, gzip, lz4, zstd or none.
	Compression string `mapstructure:"compression" default:"snappy" validate:"omitempty,oneof=snappy gzip lz4 zstd none"`
}

// BrokerList splits Brokers into trimmed, non-empty addresses.
func (c Config) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
