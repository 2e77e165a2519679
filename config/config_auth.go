package config

import (
	"errors"
	"strings"

	"github.com/glidefleet/intake/pkg/auth"
	"github.com/glidefleet/intake/pkg/auth/header"
	"github.com/glidefleet/intake/pkg/auth/static"
)

func (cfg *Config) RegisterAuthenticator(p auth.Provider) {
	cfg.authenticators = append(cfg.authenticators, p)
}

// Authenticators returns the configured request authenticators in declaration
// order. An empty slice means the API is open.
func (cfg *Config) Authenticators() []auth.Provider {
	return cfg.authenticators
}

func (cfg *Config) registerAuthenticators(f *configFile) error {
	var configs []authConfig

	if err := f.Auth.Decode(&configs); err != nil {
		return err
	}

	for _, config := range configs {
		provider, err := createAuthenticator(config)

		if err != nil {
			return err
		}

		cfg.RegisterAuthenticator(provider)
	}

	return nil
}

type authConfig struct {
	Type string `yaml:"type"`

	Token string `yaml:"token"`

	UserHeader  string `yaml:"userHeader"`
	EmailHeader string `yaml:"emailHeader"`
}

func createAuthenticator(cfg authConfig) (auth.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "static":
		return static.New(cfg.Token)

	case "header":
		var options []header.Option

		if cfg.UserHeader != "" {
			options = append(options, header.WithUserHeader(cfg.UserHeader))
		}

		if cfg.EmailHeader != "" {
			options = append(options, header.WithEmailHeader(cfg.EmailHeader))
		}

		return header.New(options...)

	default:
		return nil, errors.New("invalid auth provider type: " + cfg.Type)
	}
}
