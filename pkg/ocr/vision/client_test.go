package vision_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glidefleet/intake/pkg/ocr"
	"github.com/glidefleet/intake/pkg/ocr/vision"

	"github.com/stretchr/testify/require"
)

func requireBase64Image(t *testing.T, r *http.Request) {
	t.Helper()

	var body struct {
		Base64Image string `json:"base64Image"`
	}

	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	require.True(t, strings.HasPrefix(body.Base64Image, "data:image/jpeg;base64,"))
}

func TestReadPlate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/utility/detect-license-image", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		requireBase64Image(t, r)

		w.Write([]byte(`{"licensePlateNumber": " 8abc123 ", "licenseRegion": "ca"}`))
	}))

	defer server.Close()

	client, err := vision.New(server.URL, vision.WithToken("test-token"))
	require.NoError(t, err)

	result, err := client.ReadPlate(t.Context(), ocr.Image{Content: []byte{0xff, 0xd8}})
	require.NoError(t, err)

	require.Equal(t, "8ABC123", result.Plate)
	require.Equal(t, "CA", result.Region)
}

func TestReadVINEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/utility/detect-vin-image", r.URL.Path)

		w.Write([]byte(`{"data": {"vin": "1hgcm82633a004352", "year": 2003, "make": "HONDA"}}`))
	}))

	defer server.Close()

	client, err := vision.New(server.URL)
	require.NoError(t, err)

	result, err := client.ReadVIN(t.Context(), ocr.Image{Content: []byte{0xff, 0xd8}})
	require.NoError(t, err)

	require.Equal(t, "1HGCM82633A004352", result.VIN)
	require.Equal(t, "2003", result.Year)
	require.Equal(t, "HONDA", result.Make)
}

func TestReadCarrierID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/utility/detect-dot-mc-image", r.URL.Path)

		w.Write([]byte(`{"dotOrMc": "US DOT 3916245"}`))
	}))

	defer server.Close()

	client, err := vision.New(server.URL)
	require.NoError(t, err)

	result, err := client.ReadCarrierID(t.Context(), ocr.Image{Content: []byte{0xff, 0xd8}})
	require.NoError(t, err)

	require.Equal(t, "US DOT 3916245", result.Raw)
}

func TestReadOdometer(t *testing.T) {
	crop := []byte{0x01, 0x02, 0x03}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/utility/odometer-ocr", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"odometer":     34672,
			"croppedImage": base64.StdEncoding.EncodeToString(crop),
		})
	}))

	defer server.Close()

	client, err := vision.New(server.URL)
	require.NoError(t, err)

	result, err := client.ReadOdometer(t.Context(), ocr.Image{Content: []byte{0xff, 0xd8}})
	require.NoError(t, err)

	require.Equal(t, "34672", result.Value)
	require.Equal(t, crop, result.Refined)
}

func TestReadCompanyName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/utility/detect-company-name-image", r.URL.Path)

		w.Write([]byte(`{"companyName": " MILES X LLC "}`))
	}))

	defer server.Close()

	client, err := vision.New(server.URL)
	require.NoError(t, err)

	name, err := client.ReadCompanyName(t.Context(), ocr.Image{Content: []byte{0xff, 0xd8}})
	require.NoError(t, err)

	require.Equal(t, "MILES X LLC", name)
}
