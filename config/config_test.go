package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glidefleet/intake/config"

	"github.com/stretchr/testify/require"
)

const testConfig = `
address: ":9090"

plates:
  platerecognizer:
    type: platerecognizer
    token: ${TEST_PLATE_TOKEN}
    regions:
      - us

vins:
  backend:
    type: vision
    url: http://localhost:9000

carriers:
  parkpow:
    type: parkpow
    token: test-token
  backend:
    type: vision
    url: http://localhost:9000

odometers:
  backend:
    type: vision
    url: http://localhost:9000

companies:
  backend:
    type: vision
    url: http://localhost:9000

texts:
  openai:
    type: openai
    token: test-key
    limit: 10

lookups:
  fleet:
    type: fleet
    url: http://localhost:9000
    token: test-token

decoders:
  vpic:
    type: vpic

auth:
  - type: static
    token: secret
`

func parseTestConfig(t *testing.T, content string) (*config.Config, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return config.Parse(path)
}

func TestParse(t *testing.T) {
	t.Setenv("TEST_PLATE_TOKEN", "plate-token")

	cfg, err := parseTestConfig(t, testConfig)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Address)

	_, err = cfg.Plate("platerecognizer")
	require.NoError(t, err)

	_, err = cfg.Plate("")
	require.NoError(t, err)

	_, err = cfg.Vin("backend")
	require.NoError(t, err)

	_, err = cfg.Carrier("")
	require.NoError(t, err)

	_, err = cfg.Text("openai")
	require.NoError(t, err)

	_, err = cfg.Lookup("fleet")
	require.NoError(t, err)

	_, err = cfg.Submitter("")
	require.NoError(t, err)

	_, err = cfg.UnitChecker("")
	require.NoError(t, err)

	_, err = cfg.Decoder("")
	require.NoError(t, err)

	require.Len(t, cfg.Authenticators(), 1)
}

func TestParseReconciler(t *testing.T) {
	t.Setenv("TEST_PLATE_TOKEN", "plate-token")

	cfg, err := parseTestConfig(t, testConfig)
	require.NoError(t, err)

	r := cfg.Reconciler()

	require.NotNil(t, r.Plates)
	require.NotNil(t, r.VINs)
	require.NotNil(t, r.Carriers)
	require.NotNil(t, r.Odometers)
	require.NotNil(t, r.Companies)
	require.NotNil(t, r.Texts)
	require.NotNil(t, r.Units)
	require.NotNil(t, r.Decoder)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := parseTestConfig(t, "address: \":8080\"\n")
	require.NoError(t, err)

	_, err = cfg.Plate("")
	require.Error(t, err)

	r := cfg.Reconciler()
	require.Nil(t, r.Plates)
}

func TestParseRejectsUnknownProviderType(t *testing.T) {
	_, err := parseTestConfig(t, "plates:\n  bad:\n    type: nope\n")
	require.Error(t, err)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := parseTestConfig(t, "addresss: \":8080\"\n")
	require.Error(t, err)
}
