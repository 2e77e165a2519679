package config

import (
	"errors"
	"strings"

	"github.com/glidefleet/intake/pkg/limiter"
	"github.com/glidefleet/intake/pkg/ocr"
	"github.com/glidefleet/intake/pkg/ocr/multi"
	"github.com/glidefleet/intake/pkg/ocr/parkpow"
	"github.com/glidefleet/intake/pkg/ocr/vision"
	"github.com/glidefleet/intake/pkg/otel"
)

func (cfg *Config) RegisterCarrier(id string, p ocr.CarrierReader) {
	if cfg.carriers == nil {
		cfg.carriers = make(map[string]ocr.CarrierReader)
	}

	if _, ok := cfg.carriers[""]; !ok {
		cfg.carriers[""] = p
	}

	cfg.carriers[id] = p
}

func (cfg *Config) Carrier(id string) (ocr.CarrierReader, error) {
	if cfg.carriers != nil {
		if p, ok := cfg.carriers[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("carrier recognizer not found: " + id)
}

func (cfg *Config) registerCarriers(f *configFile) error {
	var configs map[string]recognizerConfig

	if err := f.Carriers.Decode(&configs); err != nil {
		return err
	}

	var readers []ocr.CarrierReader

	for _, node := range f.Carriers.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		context := recognizerContext{
			Limiter: createLimiter(config.Limit),
		}

		reader, err := createCarrierReader(config)

		if err != nil {
			return err
		}

		if _, ok := reader.(limiter.CarrierReader); !ok {
			reader = limiter.NewCarrierReader(context.Limiter, reader)
		}

		if _, ok := reader.(otel.CarrierReader); !ok {
			reader = otel.NewCarrierReader(id, reader)
		}

		readers = append(readers, reader)

		cfg.RegisterCarrier(id, reader)
	}

	if len(readers) > 0 {
		cfg.carriers[""] = multi.NewCarrierReader(readers...)
	}

	return nil
}

func createCarrierReader(cfg recognizerConfig) (ocr.CarrierReader, error) {
	switch strings.ToLower(cfg.Type) {
	case "parkpow":
		var options []parkpow.Option

		if cfg.Token != "" {
			options = append(options, parkpow.WithToken(cfg.Token))
		}

		return parkpow.New(cfg.URL, options...)

	case "vision":
		var options []vision.Option

		if cfg.Token != "" {
			options = append(options, vision.WithToken(cfg.Token))
		}

		return vision.New(cfg.URL, options...)

	default:
		return nil, errors.New("invalid carrier recognizer type: " + cfg.Type)
	}
}
