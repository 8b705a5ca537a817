package model

import "time"

// Config holds the complete process configuration. Loaded once at startup;
// the pipeline treats it as read-only.
type Config struct {
	Rules       RulesConfig       `yaml:"rules" json:"rules"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// RulesConfig points at the externally supplied rule/template tables.
// Empty paths select the built-in default tables.
type RulesConfig struct {
	ExtractionPath  string `yaml:"extraction_path" json:"extraction_path"`
	RiskMappingPath string `yaml:"risk_mapping_path" json:"risk_mapping_path"`
	TemplatesV0Path string `yaml:"templates_v0_path" json:"templates_v0_path"`
	TemplatesV1Path string `yaml:"templates_v1_path" json:"templates_v1_path"`
}

// CacheConfig controls the per-process result cache.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" json:"enabled"`
	TTL             time.Duration `yaml:"ttl" json:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	BatchWorkers      int     `yaml:"batch_workers" json:"batch_workers"`
	DocsPerSecond     float64 `yaml:"docs_per_second" json:"docs_per_second"`
	RateLimiterBurst  int     `yaml:"rate_limiter_burst" json:"rate_limiter_burst"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
	Pretty  bool `yaml:"pretty" json:"pretty"` // Indented JSON
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers:     4,
			DocsPerSecond:    20,
			RateLimiterBurst: 5,
		},
		Output: OutputConfig{
			Verbose: false,
			Pretty:  true,
		},
	}
}
