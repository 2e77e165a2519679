package client

import (
	"context"

	"github.com/glidefleet/intake/server/api"
)

type IntakeService struct {
	Options []RequestOption
}

func NewIntakeService(opts ...RequestOption) IntakeService {
	return IntakeService{
		Options: opts,
	}
}

type Capture = api.Capture

type ReconcileRequest = api.ReconcileRequest
type ReconcileResponse = api.ReconcileResponse

type CheckUnitRequest = api.CheckUnitRequest
type CheckUnitResponse = api.CheckUnitResponse

type SubmitRequest = api.SubmitRequest
type SubmitRecord = api.SubmitRecord
type SubmitResponse = api.SubmitResponse

func (s *IntakeService) Reconcile(ctx context.Context, input ReconcileRequest, opts ...RequestOption) (*ReconcileResponse, error) {
	c := newRequestConfig(append(s.Options, opts...)...)

	var result ReconcileResponse

	if err := postJson(ctx, c, "/v1/intake/reconcile", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *IntakeService) CheckUnit(ctx context.Context, input CheckUnitRequest, opts ...RequestOption) (*CheckUnitResponse, error) {
	c := newRequestConfig(append(s.Options, opts...)...)

	var result CheckUnitResponse

	if err := postJson(ctx, c, "/v1/intake/check-unit", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *IntakeService) Submit(ctx context.Context, input SubmitRequest, opts ...RequestOption) (*SubmitResponse, error) {
	c := newRequestConfig(append(s.Options, opts...)...)

	var result SubmitResponse

	if err := postJson(ctx, c, "/v1/intake/submit", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
