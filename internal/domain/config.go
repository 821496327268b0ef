package domain

import "time"

// Config represents the minimal eha configuration loaded from config.yaml.
type Config struct {
	HostsFile string
	Defaults  DefaultsConfig
}

type DefaultsConfig struct {
	TTL time.Duration
}

// DefaultConfig provides sane defaults if config.yaml is absent or partial.
func DefaultConfig() Config {
	return Config{
		HostsFile: "/etc/hosts",
		Defaults: DefaultsConfig{
			TTL: 24 * time.Hour,
		},
	}
}
