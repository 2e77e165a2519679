package platerecognizer

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

var _ ocr.PlateReader = &Client{}

type Client struct {
	client *http.Client

	url   string
	token string

	regions []string
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		url = "https://api.platerecognizer.com"
	}

	c := &Client{
		client: http.DefaultClient,

		url: url,

		regions: []string{"us"},
	}

	for _, option := range options {
		option(c)
	}

	if c.token == "" {
		return nil, errors.New("invalid token")
	}

	return c, nil
}

func (c *Client) ReadPlate(ctx context.Context, image ocr.Image) (*ocr.PlateResult, error) {
	if len(image.Content) == 0 {
		return nil, ocr.ErrUnsupported
	}

	var body bytes.Buffer

	w := multipart.NewWriter(&body)

	file, err := w.CreateFormFile("upload", "image.jpg")

	if err != nil {
		return nil, err
	}

	if _, err := file.Write(image.Content); err != nil {
		return nil, err
	}

	for _, region := range c.regions {
		w.WriteField("regions", region)
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	url := strings.TrimRight(c.url, "/") + "/v1/plate-reader/"

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

	var response ReaderResponse

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	if len(response.Results) == 0 {
		return &ocr.PlateResult{}, nil
	}

	candidate := response.Results[0]

	result := &ocr.PlateResult{
		Plate: strings.ToUpper(candidate.Plate),
	}

	// region codes come as "us-ca"; only the state part is kept
	if parts := strings.Split(candidate.Region.Code, "-"); len(parts) >= 2 {
		result.Region = strings.ToUpper(parts[1])
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
