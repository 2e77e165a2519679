package client

import (
	"context"

	"github.com/glidefleet/intake/server/api"
)

type VinService struct {
	Options []RequestOption
}

func NewVinService(opts ...RequestOption) VinService {
	return VinService{
		Options: opts,
	}
}

type VinValidateResponse = api.VinValidateResponse
type VinCorrectResponse = api.VinCorrectResponse

func (s *VinService) Validate(ctx context.Context, vin string, opts ...RequestOption) (*VinValidateResponse, error) {
	c := newRequestConfig(append(s.Options, opts...)...)

	var result VinValidateResponse

	if err := postJson(ctx, c, "/v1/vin/validate", api.VinRequest{VIN: vin}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *VinService) Correct(ctx context.Context, vin string, opts ...RequestOption) (*VinCorrectResponse, error) {
	c := newRequestConfig(append(s.Options, opts...)...)

	var result VinCorrectResponse

	if err := postJson(ctx, c, "/v1/vin/correct", api.VinRequest{VIN: vin}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
