package client

import (
	"context"

	"github.com/glidefleet/intake/server/api"
)

type CarrierService struct {
	Options []RequestOption
}

func NewCarrierService(opts ...RequestOption) CarrierService {
	return CarrierService{
		Options: opts,
	}
}

type CarrierParseResponse = api.CarrierParseResponse
type CarrierValidateResponse = api.CarrierValidateResponse

func (s *CarrierService) Parse(ctx context.Context, text string, opts ...RequestOption) (*CarrierParseResponse, error) {
	c := newRequestConfig(append(s.Options, opts...)...)

	var result CarrierParseResponse

	if err := postJson(ctx, c, "/v1/carrier/parse", api.CarrierParseRequest{Text: text}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *CarrierService) Validate(ctx context.Context, typ, number string, opts ...RequestOption) (*CarrierValidateResponse, error) {
	c := newRequestConfig(append(s.Options, opts...)...)

	var result CarrierValidateResponse

	if err := postJson(ctx, c, "/v1/carrier/validate", api.CarrierValidateRequest{Type: typ, Number: number}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
