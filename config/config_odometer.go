package config

import (
	"errors"
	"strings"

	"github.com/glidefleet/intake/pkg/limiter"
	"github.com/glidefleet/intake/pkg/ocr"
	"github.com/glidefleet/intake/pkg/ocr/vision"
	"github.com/glidefleet/intake/pkg/otel"
)

func (cfg *Config) RegisterOdometer(id string, p ocr.OdometerReader) {
	if cfg.odometers == nil {
		cfg.odometers = make(map[string]ocr.OdometerReader)
	}

	if _, ok := cfg.odometers[""]; !ok {
		cfg.odometers[""] = p
	}

	cfg.odometers[id] = p
}

func (cfg *Config) Odometer(id string) (ocr.OdometerReader, error) {
	if cfg.odometers != nil {
		if p, ok := cfg.odometers[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("odometer recognizer not found: " + id)
}

func (cfg *Config) registerOdometers(f *configFile) error {
	var configs map[string]recognizerConfig

	if err := f.Odometers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Odometers.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		context := recognizerContext{
			Limiter: createLimiter(config.Limit),
		}

		reader, err := createOdometerReader(config)

		if err != nil {
			return err
		}

		if _, ok := reader.(limiter.OdometerReader); !ok {
			reader = limiter.NewOdometerReader(context.Limiter, reader)
		}

		if _, ok := reader.(otel.OdometerReader); !ok {
			reader = otel.NewOdometerReader(id, reader)
		}

		cfg.RegisterOdometer(id, reader)
	}

	return nil
}

func createOdometerReader(cfg recognizerConfig) (ocr.OdometerReader, error) {
	switch strings.ToLower(cfg.Type) {
	case "vision":
		var options []vision.Option

		if cfg.Token != "" {
			options = append(options, vision.WithToken(cfg.Token))
		}

		return vision.New(cfg.URL, options...)

	default:
		return nil, errors.New("invalid odometer recognizer type: " + cfg.Type)
	}
}
