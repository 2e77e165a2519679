package limiter

import (
	"context"

	"github.com/glidefleet/intake/pkg/lookup"

	"golang.org/x/time/rate"
)

type Provider interface {
	Limiter
	lookup.Provider
}

type limitedProvider struct {
	limiter  *rate.Limiter
	provider lookup.Provider
}

func NewProvider(l *rate.Limiter, p lookup.Provider) Provider {
	return &limitedProvider{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedProvider) limiterSetup() {
}

func (p *limitedProvider) FindEquipment(ctx context.Context, query lookup.Query) (*lookup.Match, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.FindEquipment(ctx, query)
}

type Decoder interface {
	Limiter
	lookup.Decoder
}

type limitedDecoder struct {
	limiter *rate.Limiter
	decoder lookup.Decoder
}

func NewDecoder(l *rate.Limiter, d lookup.Decoder) Decoder {
	return &limitedDecoder{
		limiter: l,
		decoder: d,
	}
}

func (p *limitedDecoder) limiterSetup() {
}

func (p *limitedDecoder) DecodeVIN(ctx context.Context, vin string) (*lookup.Vehicle, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.decoder.DecodeVIN(ctx, vin)
}
