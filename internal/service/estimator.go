package service

import (
	"github.com/genix/genix-go/internal/model"
	"github.com/genix/genix-go/internal/secret"
)

// EstimatorService handles entropy estimation business logic.
type EstimatorService struct{}

// NewEstimatorService creates a new EstimatorService.
func NewEstimatorService() *EstimatorService {
	return &EstimatorService{}
}

// Check returns the estimated bits and verdict for an input string.
func (s *EstimatorService) Check(req model.EstimateRequest) (model.EntropyCheckResponse, error) {
	style, err := styleHint(req.Style)
	if err != nil {
		return model.EntropyCheckResponse{}, err
	}

	bits, err := secret.Estimate(req.Input, style)
	if err != nil {
		return model.EntropyCheckResponse{}, err
	}

	return model.EntropyCheckResponse{
		Bits:    bits,
		Verdict: secret.Verdict(bits),
	}, nil
}

// Profile returns the full entropy breakdown for an input string.
func (s *EstimatorService) Profile(req model.EstimateRequest) (model.EntropyProfileResponse, error) {
	style, err := styleHint(req.Style)
	if err != nil {
		return model.EntropyProfileResponse{}, err
	}

	p, err := secret.EstimateDetailed(req.Input, style)
	if err != nil {
		return model.EntropyProfileResponse{}, err
	}

	resp := model.EntropyProfileResponse{
		Bits:        p.Bits,
		Verdict:     secret.Verdict(p.Bits),
		CharsetSize: p.CharsetSize,
		PerUnit:     p.PerUnit,
		Length:      p.Length,
		HasLower:    p.HasLower,
		HasUpper:    p.HasUpper,
		HasDigit:    p.HasDigit,
		HasSymbol:   p.HasSymbol,
	}
	if style == secret.StylePassphrase {
		wc := p.WordCount
		size := p.AssumedWordlistSize
		resp.WordCount = &wc
		resp.AssumedWordlistSize = &size
	}

	return resp, nil
}

// styleHint parses an optional style name, defaulting to random.
func styleHint(name string) (secret.Style, error) {
	if name == "" {
		return secret.StyleRandom, nil
	}
	return secret.ParseStyle(name)
}
