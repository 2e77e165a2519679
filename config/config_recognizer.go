package config

import (
	"golang.org/x/time/rate"
)

// recognizerConfig is the shared YAML shape for all OCR provider kinds.
type recognizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model string `yaml:"model"`

	Languages []string `yaml:"languages"`
	Regions   []string `yaml:"regions"`

	Limit *int `yaml:"limit"`
}

type recognizerContext struct {
	Limiter *rate.Limiter
}
