package config

import (
	"errors"
	"strings"

	"github.com/glidefleet/intake/pkg/limiter"
	"github.com/glidefleet/intake/pkg/ocr"
	"github.com/glidefleet/intake/pkg/ocr/multi"
	"github.com/glidefleet/intake/pkg/ocr/openai"
	"github.com/glidefleet/intake/pkg/ocr/vision"
	"github.com/glidefleet/intake/pkg/otel"
)

func (cfg *Config) RegisterCompany(id string, p ocr.CompanyReader) {
	if cfg.companies == nil {
		cfg.companies = make(map[string]ocr.CompanyReader)
	}

	if _, ok := cfg.companies[""]; !ok {
		cfg.companies[""] = p
	}

	cfg.companies[id] = p
}

func (cfg *Config) Company(id string) (ocr.CompanyReader, error) {
	if cfg.companies != nil {
		if p, ok := cfg.companies[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("company recognizer not found: " + id)
}

func (cfg *Config) registerCompanies(f *configFile) error {
	var configs map[string]recognizerConfig

	if err := f.Companies.Decode(&configs); err != nil {
		return err
	}

	var readers []ocr.CompanyReader

	for _, node := range f.Companies.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		context := recognizerContext{
			Limiter: createLimiter(config.Limit),
		}

		reader, err := createCompanyReader(config)

		if err != nil {
			return err
		}

		if _, ok := reader.(limiter.CompanyReader); !ok {
			reader = limiter.NewCompanyReader(context.Limiter, reader)
		}

		if _, ok := reader.(otel.CompanyReader); !ok {
			reader = otel.NewCompanyReader(id, reader)
		}

		readers = append(readers, reader)

		cfg.RegisterCompany(id, reader)
	}

	if len(readers) > 0 {
		cfg.companies[""] = multi.NewCompanyReader(readers...)
	}

	return nil
}

func createCompanyReader(cfg recognizerConfig) (ocr.CompanyReader, error) {
	switch strings.ToLower(cfg.Type) {
	case "vision":
		var options []vision.Option

		if cfg.Token != "" {
			options = append(options, vision.WithToken(cfg.Token))
		}

		return vision.New(cfg.URL, options...)

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
		return nil, errors.New("invalid company recognizer type: " + cfg.Type)
	}
}
