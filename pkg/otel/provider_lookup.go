package otel

import (
	"context"

	"github.com/glidefleet/intake/pkg/lookup"
)

type Provider interface {
	Observable
	lookup.Provider
}

type observableProvider struct {
	name string

	provider lookup.Provider
}

func NewProvider(name string, p lookup.Provider) Provider {
	return &observableProvider{
		name: name,

		provider: p,
	}
}

func (p *observableProvider) otelSetup() {
}

func (p *observableProvider) FindEquipment(ctx context.Context, query lookup.Query) (*lookup.Match, error) {
	ctx, span := startSpan(ctx, "find-equipment "+p.name)
	defer span.End()

	return p.provider.FindEquipment(ctx, query)
}

type Decoder interface {
	Observable
	lookup.Decoder
}

type observableDecoder struct {
	name string

	decoder lookup.Decoder
}

func NewDecoder(name string, d lookup.Decoder) Decoder {
	return &observableDecoder{
		name: name,

		decoder: d,
	}
}

func (p *observableDecoder) otelSetup() {
}

func (p *observableDecoder) DecodeVIN(ctx context.Context, vin string) (*lookup.Vehicle, error) {
	ctx, span := startSpan(ctx, "decode-vin "+p.name)
	defer span.End()

	return p.decoder.DecodeVIN(ctx, vin)
}
