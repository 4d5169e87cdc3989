// internal/workers/dialogue/classify-intent/config.go
package classifyintent

import "time"

type Config struct {
	Timeout         time.Duration
	DefaultLanguage string // used when the input carries no language tag
}

func LoadConfig() *Config {
	return &Config{
		Timeout:         10 * time.Second,
		DefaultLanguage: "hi",
	}
}
