package llm

import "context"

// UnconfiguredProvider stands in when the selected provider has no API
// key. The server still starts; generation requests fail with
// ErrNotConfigured at request time.
type UnconfiguredProvider struct {
	provider string
}

// NewUnconfigured creates a provider that always fails with
// ErrNotConfigured.
func NewUnconfigured(provider string) *UnconfiguredProvider {
	return &UnconfiguredProvider{provider: provider}
}

func (p *UnconfiguredProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrNotConfigured{Provider: p.provider}
}

func (p *UnconfiguredProvider) ModelID() string {
	return "unconfigured"
}
