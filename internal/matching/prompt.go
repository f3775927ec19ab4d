package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/fairwork-za/wilmatch/internal/ai"
	"github.com/fairwork-za/wilmatch/internal/util"
)

//go:embed prompt.md
var promptTemplate string

// RenderPrompt serializes the request into the collaborator prompt. Only the
// sanitized profile, the opportunity and the audit trail are included.
func RenderPrompt(request *Request) (string, error) {
	if request == nil {
		return "", fmt.Errorf("%w: match request is required", ErrInvalidInput)
	}

	profileJSON, err := json.MarshalIndent(request.Profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sanitized profile: %w", err)
	}

	opportunityJSON, err := json.MarshalIndent(request.Opportunity, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal opportunity: %w", err)
	}

	audit := map[string]any{
		"feature_log":     request.FeatureLog,
		"bias_assessment": request.Bias,
	}
	auditJSON, err := json.MarshalIndent(audit, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal audit trail: %w", err)
	}

	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Profile:\n{{PROFILE_JSON}}\n\nOpportunity:\n{{OPPORTUNITY_JSON}}\n\nAudit:\n{{AUDIT_JSON}}\n"
	}

	prompt := strings.ReplaceAll(template, "{{PROFILE_JSON}}", string(profileJSON))
	prompt = strings.ReplaceAll(prompt, "{{OPPORTUNITY_JSON}}", string(opportunityJSON))
	prompt = strings.ReplaceAll(prompt, "{{AUDIT_JSON}}", string(auditJSON))

	return prompt, nil
}

// Dispatch renders the request and hands it to the generator, returning the
// collaborator's raw text. The response is not parsed here; downstream
// callers decide what to do with it.
func (b *Builder) Dispatch(ctx context.Context, generator ai.Generator, request *Request) (string, error) {
	if generator == nil {
		return "", fmt.Errorf("%w: generator is required", ErrInvalidInput)
	}

	prompt, err := RenderPrompt(request)
	if err != nil {
		return "", err
	}

	b.logger.Debug("dispatching match request",
		zap.String("model", generator.Model()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, b.maxLogLen)),
	)

	response, err := generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate match response: %w", err)
	}

	b.logger.Debug("match response received",
		zap.Int("response_length", utf8.RuneCountInString(response)),
		zap.String("response_preview", util.TruncateForLog(response, b.maxLogLen)),
	)

	return response, nil
}
