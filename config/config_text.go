package config

import (
	"errors"
	"strings"

	"github.com/glidefleet/intake/pkg/limiter"
	"github.com/glidefleet/intake/pkg/ocr"
	"github.com/glidefleet/intake/pkg/ocr/multi"
	"github.com/glidefleet/intake/pkg/ocr/openai"
	"github.com/glidefleet/intake/pkg/ocr/tesseract"
	"github.com/glidefleet/intake/pkg/otel"
)

func (cfg *Config) RegisterText(id string, p ocr.TextReader) {
	if cfg.texts == nil {
		cfg.texts = make(map[string]ocr.TextReader)
	}

	if _, ok := cfg.texts[""]; !ok {
		cfg.texts[""] = p
	}

	cfg.texts[id] = p
}

func (cfg *Config) Text(id string) (ocr.TextReader, error) {
	if cfg.texts != nil {
		if p, ok := cfg.texts[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("text recognizer not found: " + id)
}

func (cfg *Config) registerTexts(f *configFile) error {
	var configs map[string]recognizerConfig

	if err := f.Texts.Decode(&configs); err != nil {
		return err
	}

	var readers []ocr.TextReader

	for _, node := range f.Texts.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		context := recognizerContext{
			Limiter: createLimiter(config.Limit),
		}

		reader, err := createTextReader(config)

		if err != nil {
			return err
		}

		if _, ok := reader.(limiter.TextReader); !ok {
			reader = limiter.NewTextReader(context.Limiter, reader)
		}

		if _, ok := reader.(otel.TextReader); !ok {
			reader = otel.NewTextReader(id, reader)
		}

		readers = append(readers, reader)

		cfg.RegisterText(id, reader)
	}

	if len(readers) > 0 {
		cfg.texts[""] = multi.NewTextReader(readers...)
	}

	return nil
}

func createTextReader(cfg recognizerConfig) (ocr.TextReader, error) {
	switch strings.ToLower(cfg.Type) {
	case "tesseract":
		var options []tesseract.Option

		if len(cfg.Languages) > 0 {
			options = append(options, tesseract.WithLanguages(cfg.Languages...))
		}

		return tesseract.New(options...)

	case "openai":
		var options []openai.Option

		if cfg.URL != "" {
			options = append(options, openai.WithURL(cfg.URL))
		}

		if cfg.Token != "" {
			options = append(options, openai.WithToken(cfg.Token))
		}

		if cfg.Model != "" {
			options = append(options, openai.WithModel(cfg.Model))
		}

		return openai.New(options...)

	default:
		return nil, errors.New("invalid text recognizer type: " + cfg.Type)
	}
}
