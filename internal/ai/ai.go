// Package ai defines the contract for the external text-generation
// collaborator. The core only prepares payloads for it and treats its output
// as opaque text.
package ai

import "context"

// Generator produces free-form text from a fully-prepared, already-sanitized
// prompt. Implementations must never receive a raw student profile.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}
