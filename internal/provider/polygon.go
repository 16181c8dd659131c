package provider

import (
	"fmt"

	"stockcast/internal/provider/polygon"
)

// PolygonProvider is a BarProvider implementation backed by the Polygon API.
// It embeds *polygon.Client to expose fetch capabilities with minimal boilerplate.
type PolygonProvider struct {
	*polygon.Client
}

// NewPolygonProvider creates a new Polygon-backed BarProvider.
func NewPolygonProvider(apiKey string) (*PolygonProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("polygon API key not set")
	}
	return &PolygonProvider{
		Client: polygon.NewClient(apiKey),
	}, nil
}

// Name returns provider name.
func (p *PolygonProvider) Name() string {
	return "Polygon"
}

var _ BarProvider = (*PolygonProvider)(nil)
