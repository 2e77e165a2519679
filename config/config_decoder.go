package config

import (
	"errors"
	"strings"

	"github.com/glidefleet/intake/pkg/limiter"
	"github.com/glidefleet/intake/pkg/lookup"
	"github.com/glidefleet/intake/pkg/lookup/vpic"
	"github.com/glidefleet/intake/pkg/otel"
)

func (cfg *Config) RegisterDecoder(id string, p lookup.Decoder) {
	if cfg.decoders == nil {
		cfg.decoders = make(map[string]lookup.Decoder)
	}

	if _, ok := cfg.decoders[""]; !ok {
		cfg.decoders[""] = p
	}

	cfg.decoders[id] = p
}

func (cfg *Config) Decoder(id string) (lookup.Decoder, error) {
	if cfg.decoders != nil {
		if p, ok := cfg.decoders[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("vin decoder not found: " + id)
}

func (cfg *Config) registerDecoders(f *configFile) error {
	var configs map[string]decoderConfig

	if err := f.Decoders.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Decoders.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		context := recognizerContext{
			Limiter: createLimiter(config.Limit),
		}

		decoder, err := createDecoder(config)

		if err != nil {
			return err
		}

		if _, ok := decoder.(limiter.Decoder); !ok {
			decoder = limiter.NewDecoder(context.Limiter, decoder)
		}

		if _, ok := decoder.(otel.Decoder); !ok {
			decoder = otel.NewDecoder(id, decoder)
		}

		cfg.RegisterDecoder(id, decoder)
	}

	return nil
}

type decoderConfig struct {
	Type string `yaml:"type"`

	URL string `yaml:"url"`

	Limit *int `yaml:"limit"`
}

func createDecoder(cfg decoderConfig) (lookup.Decoder, error) {
	switch strings.ToLower(cfg.Type) {
	case "vpic":
		return vpic.New(cfg.URL)

	default:
		return nil, errors.New("invalid vin decoder type: " + cfg.Type)
	}
}
