package platerecognizer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glidefleet/intake/pkg/ocr"
	"github.com/glidefleet/intake/pkg/ocr/platerecognizer"

	"github.com/stretchr/testify/require"
)

func TestNewRequiresToken(t *testing.T) {
	_, err := platerecognizer.New("")
	require.Error(t, err)
}

func TestReadPlate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/plate-reader/", r.URL.Path)
		require.Equal(t, "Token test-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, []string{"us"}, r.MultipartForm.Value["regions"])

		_, _, err := r.FormFile("upload")
		require.NoError(t, err)

		w.WriteHeader(http.StatusCreated)

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"plate": "8abc123",
					"region": map[string]any{
						"code": "us-ca",
					},
				},
			},
		})
	}))

	defer server.Close()

	client, err := platerecognizer.New(server.URL, platerecognizer.WithToken("test-token"))
	require.NoError(t, err)

	result, err := client.ReadPlate(t.Context(), ocr.Image{Content: []byte{0xff, 0xd8}})
	require.NoError(t, err)

	require.Equal(t, "8ABC123", result.Plate)
	require.Equal(t, "CA", result.Region)
}

func TestReadPlateNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	}))

	defer server.Close()

	client, err := platerecognizer.New(server.URL, platerecognizer.WithToken("test-token"))
	require.NoError(t, err)

	result, err := client.ReadPlate(t.Context(), ocr.Image{Content: []byte{0xff, 0xd8}})
	require.NoError(t, err)

	require.Empty(t, result.Plate)
	require.Empty(t, result.Region)
}

func TestReadPlateEmptyImage(t *testing.T) {
	client, err := platerecognizer.New("http://localhost", platerecognizer.WithToken("test-token"))
	require.NoError(t, err)

	_, err = client.ReadPlate(t.Context(), ocr.Image{})
	require.ErrorIs(t, err, ocr.ErrUnsupported)
}
