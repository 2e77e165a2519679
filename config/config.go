package config

import (
	"bytes"
	"os"

	"github.com/glidefleet/intake/pkg/auth"
	"github.com/glidefleet/intake/pkg/intake"
	"github.com/glidefleet/intake/pkg/lookup"
	"github.com/glidefleet/intake/pkg/ocr"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	plates    map[string]ocr.PlateReader
	vins      map[string]ocr.VinReader
	carriers  map[string]ocr.CarrierReader
	odometers map[string]ocr.OdometerReader
	companies map[string]ocr.CompanyReader
	texts     map[string]ocr.TextReader

	lookups  map[string]lookup.Provider
	decoders map[string]lookup.Decoder

	submitters map[string]intake.Submitter
	checkers   map[string]intake.UnitChecker

	authenticators []auth.Provider
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerPlates(file); err != nil {
		return nil, err
	}

	if err := c.registerVins(file); err != nil {
		return nil, err
	}

	if err := c.registerCarriers(file); err != nil {
		return nil, err
	}

	if err := c.registerOdometers(file); err != nil {
		return nil, err
	}

	if err := c.registerCompanies(file); err != nil {
		return nil, err
	}

	if err := c.registerTexts(file); err != nil {
		return nil, err
	}

	if err := c.registerLookups(file); err != nil {
		return nil, err
	}

	if err := c.registerDecoders(file); err != nil {
		return nil, err
	}

	if err := c.registerAuthenticators(file); err != nil {
		return nil, err
	}

	return c, nil
}

// Reconciler wires the default provider of every kind into a reconciler.
// Unconfigured kinds stay nil; the reconciler treats those as "no value".
func (cfg *Config) Reconciler() *intake.Reconciler {
	r := &intake.Reconciler{}

	if p, err := cfg.Plate(""); err == nil {
		r.Plates = p
	}

	if p, err := cfg.Vin(""); err == nil {
		r.VINs = p
	}

	if p, err := cfg.Carrier(""); err == nil {
		r.Carriers = p
	}

	if p, err := cfg.Odometer(""); err == nil {
		r.Odometers = p
	}

	if p, err := cfg.Company(""); err == nil {
		r.Companies = p
	}

	if p, err := cfg.Text(""); err == nil {
		r.Texts = p
	}

	if p, err := cfg.Lookup(""); err == nil {
		r.Units = p
	}

	if p, err := cfg.Decoder(""); err == nil {
		r.Decoder = p
	}

	return r
}

type configFile struct {
	Address string `yaml:"address"`

	Plates    yaml.Node `yaml:"plates"`
	Vins      yaml.Node `yaml:"vins"`
	Carriers  yaml.Node `yaml:"carriers"`
	Odometers yaml.Node `yaml:"odometers"`
	Companies yaml.Node `yaml:"companies"`
	Texts     yaml.Node `yaml:"texts"`

	Lookups  yaml.Node `yaml:"lookups"`
	Decoders yaml.Node `yaml:"decoders"`

	Auth yaml.Node `yaml:"auth"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
