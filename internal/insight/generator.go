// Package insight turns dashboard data into natural-language insights by
// prompting an external text-generation service. Every requester degrades
// to a fixed fallback value when the service fails, so callers never see
// an error and the UI never blocks on the external dependency.
package insight

import "context"

// Generator is the capability this package needs from a text-generation
// service: one prompt in, one completion out. The production implementation
// is an OpenAI-compatible HTTP client; tests substitute deterministic or
// failing implementations to exercise the fallback paths.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
