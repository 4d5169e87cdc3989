// internal/workers/schemes/filter-eligible-schemes/config.go
package filtereligibleschemes

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
