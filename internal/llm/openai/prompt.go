package openai

import (
	"fmt"
	"log"
	"strings"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const (
	systemPromptStrict  = "You are an SEO analysis engine. Respond with JSON only. Output must match the schema exactly."
	systemPromptV2      = "You are an SEO analysis engine. Respond with JSON only. No markdown. Never omit keys. Output must match the schema exactly."
	systemPromptFixJSON = "You are a JSON repair tool. Return only valid JSON that matches the schema exactly."
)

var promptTemplates = map[string]string{
	"v1": `Produce an SEO insights payload for the site below as a JSON object with keys:
executive_summary (string), recommendations (array of {title, description, action_type, implementation_steps}),
enhanced_business_context (object of refined business attributes).
action_type must be one of: meta_update, technical_fix, content, off_page.
Prompt version: {{PROMPT_VERSION}}. Model: {{MODEL}}.`,
	"v2": `Produce an SEO insights payload for the site below as a JSON object with keys:
executive_summary (string), recommendations (array of {title, description, action_type, implementation_steps}),
enhanced_business_context (object of refined business attributes).
action_type must be one of: meta_update, technical_fix, content, off_page.
Ground every recommendation in the supplied metrics; do not invent data points.
Prompt version: {{PROMPT_VERSION}}. Model: {{MODEL}}.`,
}

// BuildPrompt creates the chat messages for an insights request.
func BuildPrompt(promptVersion, siteURL, metricsJSON, businessProfile, model string) []Message {
	usedVersion, developer := resolvePromptTemplate(promptVersion, model)
	system := systemPromptStrict
	if usedVersion == "v2" {
		system = systemPromptV2
	}

	return []Message{
		{Role: "system", Content: system},
		{Role: "developer", Content: developer},
		{Role: "user", Content: buildUserPrompt(siteURL, metricsJSON, businessProfile)},
	}
}

func buildFixPrompt(promptVersion, model string, raw []byte) []Message {
	_, developer := resolvePromptTemplate(promptVersion, model)
	return []Message{
		{Role: "system", Content: systemPromptFixJSON},
		{Role: "developer", Content: developer},
		{Role: "user", Content: fixUserPrompt(raw)},
	}
}

func resolvePromptTemplate(promptVersion, model string) (string, string) {
	version := strings.TrimSpace(promptVersion)
	template, ok := promptTemplates[version]
	usedVersion := version
	if !ok {
		log.Printf("unknown prompt version %q, defaulting to v1", version)
		usedVersion = "v1"
		template = promptTemplates[usedVersion]
	}

	replacer := strings.NewReplacer(
		"{{PROMPT_VERSION}}", usedVersion,
		"{{MODEL}}", model,
	)
	return usedVersion, replacer.Replace(template)
}

func buildUserPrompt(siteURL, metricsJSON, businessProfile string) string {
	profile := businessProfile
	if strings.TrimSpace(profile) == "" {
		profile = "N/A"
	}
	return fmt.Sprintf("Site URL:\n%s\n\nMetrics JSON:\n%s\n\nBusiness Profile:\n%s", siteURL, metricsJSON, profile)
}

func fixUserPrompt(raw []byte) string {
	return fmt.Sprintf("Fix this JSON to match the schema exactly. Output JSON only:\n%s", string(raw))
}
