// Package llm is the gateway abstraction over the language-model backend.
//
// A Provider takes a fully built prompt and returns raw text. Response
// parsing is the caller's responsibility: the quiz pipeline parses the
// text as JSON and validates it against an explicit schema (see Validate),
// so a model that ignores the "return only JSON" instruction surfaces as a
// distinct ErrInvalidResponse instead of a stray parse failure.
package llm

import "context"

// Request describes one prompt to send to the model.
type Request struct {
	// Prompt is the complete instruction text, including the embedded
	// document excerpt and the literal JSON schema the model must follow.
	Prompt string

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Provider is the contract both gateway variants implement.
// The live variant talks to the Anthropic API; the mock variant returns
// canned responses so the workflow can run without a credential.
type Provider interface {
	// Complete sends the prompt and returns the model's raw text output.
	Complete(ctx context.Context, req Request) (string, error)

	// Name identifies the provider ("anthropic", "mock").
	Name() string
}
