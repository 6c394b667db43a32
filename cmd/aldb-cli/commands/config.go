package commands

import "time"

type GitConfig struct {
	Enabled bool `json:"enabled"`
}

type SiteConfig struct {
	BaseUrl string `json:"base_url"`
}

type Config struct {
	DataDir               string     `json:"data_dir"`
	Ledger                string     `json:"ledger"`
	RepoDir               string     `json:"repo_dir"`
	RequestTimeoutSeconds float64    `json:"request_timeout_seconds"`
	DelaySeconds          float64    `json:"delay_seconds"`
	Git                   GitConfig  `json:"git"`
	Wiki                  SiteConfig `json:"wiki"`
	Guides                SiteConfig `json:"guides"`
}

// polite defaults, matching what the external sites tolerate
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = "data/equipment"
	}
	if c.Ledger == "" {
		c.Ledger = "progress.json"
	}
	if c.RepoDir == "" {
		c.RepoDir = "."
	}
	if c.RequestTimeoutSeconds == 0 {
		c.RequestTimeoutSeconds = 10
	}
	if c.DelaySeconds == 0 {
		c.DelaySeconds = 1
	}
}

func (c Config) requestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds * float64(time.Second))
}

func (c Config) delay() time.Duration {
	return time.Duration(c.DelaySeconds * float64(time.Second))
}
