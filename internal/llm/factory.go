package llm

import (
	"fmt"
	"time"
)

// Options selects and configures a gateway variant at construction time.
type Options struct {
	// Provider is "anthropic" or "mock".
	Provider string

	Anthropic AnthropicConfig

	// MockDelay is the artificial latency of the mock variant.
	MockDelay time.Duration
}

// New builds the configured Provider.
func New(opts Options) (Provider, error) {
	switch opts.Provider {
	case "anthropic":
		return NewAnthropicProvider(opts.Anthropic)
	case "mock":
		return NewMockProvider(opts.MockDelay), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", opts.Provider)
	}
}
