package parkpow_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glidefleet/intake/pkg/ocr"
	"github.com/glidefleet/intake/pkg/ocr/parkpow"

	"github.com/stretchr/testify/require"
)

func TestReadCarrierID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/predict/", r.URL.Path)
		require.Equal(t, "Token test-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))

		_, _, err := r.FormFile("image")
		require.NoError(t, err)

		w.Write([]byte(`{"USDOT": 3916245, "MC": "1447165"}`))
	}))

	defer server.Close()

	client, err := parkpow.New(server.URL, parkpow.WithToken("test-token"))
	require.NoError(t, err)

	result, err := client.ReadCarrierID(t.Context(), ocr.Image{Content: []byte{0xff, 0xd8}})
	require.NoError(t, err)

	// numeric and string identifiers both normalize to strings
	require.Equal(t, "3916245", result.DOT)
	require.Equal(t, "1447165", result.MC)
}

func TestReadCarrierIDNestedPrediction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"usdot": "3916245"}], "predictions": [{"mc": 1447165}]}`))
	}))

	defer server.Close()

	client, err := parkpow.New(server.URL, parkpow.WithToken("test-token"))
	require.NoError(t, err)

	result, err := client.ReadCarrierID(t.Context(), ocr.Image{Content: []byte{0xff, 0xd8}})
	require.NoError(t, err)

	require.Equal(t, "3916245", result.DOT)
	require.Equal(t, "1447165", result.MC)
}

func TestReadCarrierIDError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))

	defer server.Close()

	client, err := parkpow.New(server.URL, parkpow.WithToken("test-token"))
	require.NoError(t, err)

	_, err = client.ReadCarrierID(t.Context(), ocr.Image{Content: []byte{0xff, 0xd8}})
	require.Error(t, err)
}
