package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/glidefleet/intake/pkg/ocr"
)

var (
	_ ocr.PlateReader    = &Client{}
	_ ocr.VinReader      = &Client{}
	_ ocr.CarrierReader  = &Client{}
	_ ocr.OdometerReader = &Client{}
	_ ocr.CompanyReader  = &Client{}
)

// Client calls the fleet backend's vision utility endpoints. The backend
// fronts its own model pipeline; from here it is one POST per document kind
// with a base64 image and a small JSON result.
type Client struct {
	client *http.Client

	url   string
	token string
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
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

func (c *Client) post(ctx context.Context, path string, image ocr.Image, result any) error {
	if len(image.Content) == 0 {
		return ocr.ErrUnsupported
	}

	contentType := image.ContentType

	if contentType == "" {
		contentType = "image/jpeg"
	}

	body := map[string]string{
		"base64Image": "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image.Content),
	}

	data, _ := json.Marshal(body)

	url := strings.TrimRight(c.url, "/") + path

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return convertError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) ReadPlate(ctx context.Context, image ocr.Image) (*ocr.PlateResult, error) {
	var response PlateResponse

	if err := c.post(ctx, "/api/utility/detect-license-image", image, &response); err != nil {
		return nil, err
	}

	plate := response.LicensePlate

	if plate == "" {
		plate = response.LicensePlateNumber
	}

	return &ocr.PlateResult{
		Plate:  strings.ToUpper(strings.TrimSpace(plate)),
		Region: strings.ToUpper(strings.TrimSpace(response.LicenseRegion)),
	}, nil
}

func (c *Client) ReadVIN(ctx context.Context, image ocr.Image) (*ocr.VinResult, error) {
	var response VinResponse

	if err := c.post(ctx, "/api/utility/detect-vin-image", image, &response); err != nil {
		return nil, err
	}

	// older backend versions wrap the payload in a data envelope
	payload := response.VinPayload

	if payload.VIN == "" && response.Data != nil {
		payload = *response.Data
	}

	return &ocr.VinResult{
		VIN: strings.ToUpper(strings.TrimSpace(string(payload.VIN))),

		Year:  strings.TrimSpace(string(payload.Year)),
		Make:  strings.TrimSpace(string(payload.Make)),
		Model: strings.TrimSpace(string(payload.Model)),
	}, nil
}

func (c *Client) ReadCarrierID(ctx context.Context, image ocr.Image) (*ocr.CarrierResult, error) {
	var response CarrierResponse

	if err := c.post(ctx, "/api/utility/detect-dot-mc-image", image, &response); err != nil {
		return nil, err
	}

	return &ocr.CarrierResult{
		Raw: strings.TrimSpace(string(response.DotOrMc)),
	}, nil
}

func (c *Client) ReadOdometer(ctx context.Context, image ocr.Image) (*ocr.OdometerResult, error) {
	var response OdometerResponse

	if err := c.post(ctx, "/api/utility/odometer-ocr", image, &response); err != nil {
		return nil, err
	}

	result := &ocr.OdometerResult{
		Value: strings.TrimSpace(string(response.Odometer)),
	}

	if response.CroppedImage != "" {
		if data, err := base64.StdEncoding.DecodeString(response.CroppedImage); err == nil {
			result.Refined = data
		}
	}

	return result, nil
}

func (c *Client) ReadCompanyName(ctx context.Context, image ocr.Image) (string, error) {
	var response CompanyResponse

	if err := c.post(ctx, "/api/utility/detect-company-name-image", image, &response); err != nil {
		return "", err
	}

	return strings.TrimSpace(response.CompanyName), nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
