package tesseract

import (
	"context"
	"strings"

	"github.com/glidefleet/intake/pkg/ocr"

	"github.com/otiai10/gosseract/v2"
)

var _ ocr.TextReader = &Client{}

// Client runs local tesseract OCR for free-text recognition. A fresh
// gosseract client is created per call; the native handle is not safe for
// concurrent use.
type Client struct {
	languages []string
}

func New(options ...Option) (*Client, error) {
	c := &Client{
		languages: []string{"eng"},
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) ReadText(ctx context.Context, image ocr.Image) (string, error) {
	if len(image.Content) == 0 {
		return "", ocr.ErrUnsupported
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(c.languages...); err != nil {
		return "", err
	}

	if err := client.SetImageFromBytes(image.Content); err != nil {
		return "", err
	}

	text, err := client.Text()

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}
