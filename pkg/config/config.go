package config

import (
	"errors"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries everything the client needs to talk to the signing service.
type Config struct {
	// BaseURL is the scheme and host of the API, e.g. https://api.selosign.com.
	BaseURL string `env:"SELOSIGN_BASE_URL" yaml:"base_url"`
	// APIVersion is the path version segment, e.g. v3.
	APIVersion string `env:"SELOSIGN_API_VERSION" envDefault:"v3" yaml:"api_version"`
	// AccessToken authenticates every request via the Authorization header.
	AccessToken string `env:"SELOSIGN_ACCESS_TOKEN" yaml:"access_token"`
	// Timeout bounds each HTTP request end to end.
	Timeout time.Duration `env:"SELOSIGN_TIMEOUT" envDefault:"30s" yaml:"timeout"`
}

var defaultEnvLoaded sync.Once

// Load reads configuration from environment variables, loading a .env file
// first when one exists.
func Load() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// LoadFile reads configuration from a YAML file. Fields absent from the file
// keep their zero values; Validate decides whether the result is usable.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(ErrReadingConfigFile, err)
	}

	cfg := Config{APIVersion: "v3", Timeout: 30 * time.Second}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Join(ErrReadingConfigFile, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is complete enough to build a
// client. The first missing or malformed field is reported.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidBaseURL
	}
	if c.AccessToken == "" {
		return ErrMissingAccessToken
	}
	if c.APIVersion == "" {
		return ErrMissingAPIVersion
	}
	return nil
}
