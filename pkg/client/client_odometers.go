package client

import (
	"context"

	"github.com/glidefleet/intake/server/api"
)

type OdometerService struct {
	Options []RequestOption
}

func NewOdometerService(opts ...RequestOption) OdometerService {
	return OdometerService{
		Options: opts,
	}
}

type OdometerResponse = api.OdometerResponse

func (s *OdometerService) Normalize(ctx context.Context, value string, opts ...RequestOption) (*OdometerResponse, error) {
	c := newRequestConfig(append(s.Options, opts...)...)

	var result OdometerResponse

	if err := postJson(ctx, c, "/v1/odometer/normalize", api.OdometerRequest{Value: value}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
