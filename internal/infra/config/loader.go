package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/astromechza/eha/internal/domain"
)

// DefaultPath returns the per-user config location, typically
// ~/.config/eha/config.yaml.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "eha", "config.yaml"), nil
}

// Load reads config.yaml from path and applies parsed values on top of the
// defaults. A missing file is not an error; the defaults stand.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Eha.HostsFile != "" {
		cfg.HostsFile = y.Eha.HostsFile
	}
	if y.Eha.Defaults.TTL != "" {
		d, err := time.ParseDuration(y.Eha.Defaults.TTL)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		cfg.Defaults.TTL = d
	}

	return cfg, nil
}

type yamlConfig struct {
	Eha struct {
		HostsFile string `yaml:"hosts_file"`

		Defaults struct {
			TTL string `yaml:"ttl"`
		} `yaml:"defaults"`
	} `yaml:"eha"`
}
