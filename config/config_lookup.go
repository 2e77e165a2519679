package config

import (
	"errors"
	"strings"

	"github.com/glidefleet/intake/pkg/intake"
	"github.com/glidefleet/intake/pkg/limiter"
	"github.com/glidefleet/intake/pkg/lookup"
	"github.com/glidefleet/intake/pkg/lookup/fleet"
	"github.com/glidefleet/intake/pkg/otel"
)

func (cfg *Config) RegisterLookup(id string, p lookup.Provider) {
	if cfg.lookups == nil {
		cfg.lookups = make(map[string]lookup.Provider)
	}

	if _, ok := cfg.lookups[""]; !ok {
		cfg.lookups[""] = p
	}

	cfg.lookups[id] = p
}

func (cfg *Config) Lookup(id string) (lookup.Provider, error) {
	if cfg.lookups != nil {
		if p, ok := cfg.lookups[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("lookup provider not found: " + id)
}

func (cfg *Config) RegisterSubmitter(id string, p intake.Submitter) {
	if cfg.submitters == nil {
		cfg.submitters = make(map[string]intake.Submitter)
	}

	if _, ok := cfg.submitters[""]; !ok {
		cfg.submitters[""] = p
	}

	cfg.submitters[id] = p
}

func (cfg *Config) Submitter(id string) (intake.Submitter, error) {
	if cfg.submitters != nil {
		if p, ok := cfg.submitters[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("submitter not found: " + id)
}

func (cfg *Config) RegisterUnitChecker(id string, p intake.UnitChecker) {
	if cfg.checkers == nil {
		cfg.checkers = make(map[string]intake.UnitChecker)
	}

	if _, ok := cfg.checkers[""]; !ok {
		cfg.checkers[""] = p
	}

	cfg.checkers[id] = p
}

func (cfg *Config) UnitChecker(id string) (intake.UnitChecker, error) {
	if cfg.checkers != nil {
		if p, ok := cfg.checkers[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("unit checker not found: " + id)
}

func (cfg *Config) registerLookups(f *configFile) error {
	var configs map[string]lookupConfig

	if err := f.Lookups.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Lookups.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		context := recognizerContext{
			Limiter: createLimiter(config.Limit),
		}

		client, err := createFleetClient(config)

		if err != nil {
			return err
		}

		var provider lookup.Provider = client

		if _, ok := provider.(limiter.Provider); !ok {
			provider = limiter.NewProvider(context.Limiter, provider)
		}

		if _, ok := provider.(otel.Provider); !ok {
			provider = otel.NewProvider(id, provider)
		}

		cfg.RegisterLookup(id, provider)
		cfg.RegisterSubmitter(id, client)
		cfg.RegisterUnitChecker(id, client)
	}

	return nil
}

type lookupConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Limit *int `yaml:"limit"`
}

func createFleetClient(cfg lookupConfig) (*fleet.Client, error) {
	switch strings.ToLower(cfg.Type) {
	case "fleet":
		var options []fleet.Option

		if cfg.Token != "" {
			options = append(options, fleet.WithToken(cfg.Token))
		}

		return fleet.New(cfg.URL, options...)

	default:
		return nil, errors.New("invalid lookup provider type: " + cfg.Type)
	}
}
