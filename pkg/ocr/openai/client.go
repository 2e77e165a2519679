package openai

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/glidefleet/intake/pkg/ocr"

	"github.com/openai/openai-go/v3"
)

var (
	_ ocr.TextReader    = &Client{}
	_ ocr.CompanyReader = &Client{}
)

// Client reads document text with an OpenAI vision model. It serves as the
// generic free-text recognizer when no local OCR is available.
type Client struct {
	client openai.Client

	model string
}

func New(options ...Option) (*Client, error) {
	cfg := &Config{
		model: "gpt-4o-mini",
	}

	for _, option := range options {
		option(cfg)
	}

	return &Client{
		client: openai.NewClient(cfg.Options()...),

		model: cfg.model,
	}, nil
}

func (c *Client) complete(ctx context.Context, prompt string, image ocr.Image) (string, error) {
	if len(image.Content) == 0 {
		return "", ocr.ErrUnsupported
	}

	contentType := image.ContentType

	if contentType == "" {
		contentType = "image/jpeg"
	}

	url := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image.Content)

	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(prompt),
		openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: url,
		}),
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),

		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(parts),
		},
	})

	if err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func (c *Client) ReadText(ctx context.Context, image ocr.Image) (string, error) {
	return c.complete(ctx, "Transcribe all readable text in this photo. Return the text only, one line per printed line, without commentary.", image)
}

func (c *Client) ReadCompanyName(ctx context.Context, image ocr.Image) (string, error) {
	text, err := c.complete(ctx, "This photo shows a commercial vehicle or carrier paperwork. Return only the carrier company name, or an empty response if none is visible.", image)

	if err != nil {
		return "", err
	}

	if strings.EqualFold(text, "none") {
		return "", nil
	}

	return text, nil
}
