package vpic

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/glidefleet/intake/pkg/lookup"
)

var _ lookup.Decoder = &Client{}

// Client decodes VINs against the NHTSA vPIC reference database. The API is
// free and requires no key.
type Client struct {
	client *http.Client

	url string
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		url = "https://vpic.nhtsa.dot.gov"
	}

	c := &Client{
		client: http.DefaultClient,

		url: url,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) DecodeVIN(ctx context.Context, vin string) (*lookup.Vehicle, error) {
	v := strings.ToUpper(strings.TrimSpace(vin))

	// partial scans shorter than the world-manufacturer prefix decode to noise
	if len(v) < 8 {
		return nil, nil
	}

	u := strings.TrimRight(c.url, "/") + "/api/vehicles/DecodeVinValues/" + url.PathEscape(v) + "?format=json"

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var response DecodeResponse

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	if len(response.Results) == 0 {
		return nil, nil
	}

	values := response.Results[0]

	vehicle := &lookup.Vehicle{
		Year:  firstValue(values, "ModelYear", "Year"),
		Make:  firstValue(values, "Make", "Manufacturer"),
		Model: firstValue(values, "Model"),
	}

	if vehicle.Year == "" && vehicle.Make == "" && vehicle.Model == "" {
		return nil, nil
	}

	return vehicle, nil
}

func firstValue(values map[string]string, keys ...string) string {
	for _, key := range keys {
		val := strings.TrimSpace(values[key])

		if val != "" && val != "Not Applicable" {
			return val
		}
	}

	return ""
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
