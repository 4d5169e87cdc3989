// internal/workers/schemes/search-schemes/config.go
package searchschemes

import "time"

type Config struct {
	Timeout    time.Duration
	MaxResults int // 0 means unlimited
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    10 * time.Second,
		MaxResults: 0,
	}
}
