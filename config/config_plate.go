package config

import (
	"errors"
	"strings"

	"github.com/glidefleet/intake/pkg/limiter"
	"github.com/glidefleet/intake/pkg/ocr"
	"github.com/glidefleet/intake/pkg/ocr/multi"
	"github.com/glidefleet/intake/pkg/ocr/platerecognizer"
	"github.com/glidefleet/intake/pkg/ocr/vision"
	"github.com/glidefleet/intake/pkg/otel"
)

func (cfg *Config) RegisterPlate(id string, p ocr.PlateReader) {
	if cfg.plates == nil {
		cfg.plates = make(map[string]ocr.PlateReader)
	}

	if _, ok := cfg.plates[""]; !ok {
		cfg.plates[""] = p
	}

	cfg.plates[id] = p
}

func (cfg *Config) Plate(id string) (ocr.PlateReader, error) {
	if cfg.plates != nil {
		if p, ok := cfg.plates[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("plate recognizer not found: " + id)
}

func (cfg *Config) registerPlates(f *configFile) error {
	var configs map[string]recognizerConfig

	if err := f.Plates.Decode(&configs); err != nil {
		return err
	}

	var readers []ocr.PlateReader

	for _, node := range f.Plates.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		context := recognizerContext{
			Limiter: createLimiter(config.Limit),
		}

		reader, err := createPlateReader(config)

		if err != nil {
			return err
		}

		if _, ok := reader.(limiter.PlateReader); !ok {
			reader = limiter.NewPlateReader(context.Limiter, reader)
		}

		if _, ok := reader.(otel.PlateReader); !ok {
			reader = otel.NewPlateReader(id, reader)
		}

		readers = append(readers, reader)

		cfg.RegisterPlate(id, reader)
	}

	if len(readers) > 0 {
		cfg.plates[""] = multi.NewPlateReader(readers...)
	}

	return nil
}

func createPlateReader(cfg recognizerConfig) (ocr.PlateReader, error) {
	switch strings.ToLower(cfg.Type) {
	case "platerecognizer":
		var options []platerecognizer.Option

		if cfg.Token != "" {
			options = append(options, platerecognizer.WithToken(cfg.Token))
		}

		if len(cfg.Regions) > 0 {
			options = append(options, platerecognizer.WithRegions(cfg.Regions...))
		}

		return platerecognizer.New(cfg.URL, options...)

	case "vision":
		var options []vision.Option

		if cfg.Token != "" {
			options = append(options, vision.WithToken(cfg.Token))
		}

		return vision.New(cfg.URL, options...)

	default:
		return nil, errors.New("invalid plate recognizer type: " + cfg.Type)
	}
}
