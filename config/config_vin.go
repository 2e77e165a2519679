package config

import (
	"errors"
	"strings"

	"github.com/glidefleet/intake/pkg/limiter"
	"github.com/glidefleet/intake/pkg/ocr"
	"github.com/glidefleet/intake/pkg/ocr/vision"
	"github.com/glidefleet/intake/pkg/otel"
)

func (cfg *Config) RegisterVin(id string, p ocr.VinReader) {
	if cfg.vins == nil {
		cfg.vins = make(map[string]ocr.VinReader)
	}

	if _, ok := cfg.vins[""]; !ok {
		cfg.vins[""] = p
	}

	cfg.vins[id] = p
}

func (cfg *Config) Vin(id string) (ocr.VinReader, error) {
	if cfg.vins != nil {
		if p, ok := cfg.vins[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("vin recognizer not found: " + id)
}

func (cfg *Config) registerVins(f *configFile) error {
	var configs map[string]recognizerConfig

	if err := f.Vins.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Vins.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		context := recognizerContext{
			Limiter: createLimiter(config.Limit),
		}

		reader, err := createVinReader(config)

		if err != nil {
			return err
		}

		if _, ok := reader.(limiter.VinReader); !ok {
			reader = limiter.NewVinReader(context.Limiter, reader)
		}

		if _, ok := reader.(otel.VinReader); !ok {
			reader = otel.NewVinReader(id, reader)
		}

		cfg.RegisterVin(id, reader)
	}

	return nil
}

func createVinReader(cfg recognizerConfig) (ocr.VinReader, error) {
	switch strings.ToLower(cfg.Type) {
	case "vision":
		var options []vision.Option

		if cfg.Token != "" {
			options = append(options, vision.WithToken(cfg.Token))
		}

		return vision.New(cfg.URL, options...)

	default:
		return nil, errors.New("invalid vin recognizer type: " + cfg.Type)
	}
}
