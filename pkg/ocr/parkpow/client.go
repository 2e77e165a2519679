package parkpow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/glidefleet/intake/pkg/ocr"
)

var _ ocr.CarrierReader = &Client{}

type Client struct {
	client *http.Client

	url   string
	token string
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		url = "https://usdot.parkpow.com"
	}

	c := &Client{
		client: http.DefaultClient,

		url: url,
	}

	for _, option := range options {
		option(c)
	}

	if c.token == "" {
		return nil, errors.New("invalid token")
	}

	return c, nil
}

func (c *Client) ReadCarrierID(ctx context.Context, image ocr.Image) (*ocr.CarrierResult, error) {
	if len(image.Content) == 0 {
		return nil, ocr.ErrUnsupported
	}

	var body bytes.Buffer

	w := multipart.NewWriter(&body)

	file, err := w.CreateFormFile("image", "image.jpg")

	if err != nil {
		return nil, err
	}

	if _, err := file.Write(image.Content); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	url := strings.TrimRight(c.url, "/") + "/api/v1/predict/"

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Token "+c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, convertError(resp)
	}

	var response PredictResponse

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	result := &ocr.CarrierResult{
		DOT: strings.TrimSpace(string(response.USDOT)),
		MC:  strings.TrimSpace(string(response.MC)),
	}

	// some deployments nest the prediction instead of returning it flat
	for _, p := range append(response.Results, response.Predictions...) {
		if result.DOT == "" {
			result.DOT = strings.TrimSpace(string(p.USDOT))
		}

		if result.MC == "" {
			result.MC = strings.TrimSpace(string(p.MC))
		}
	}

	return result, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
