package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"seo-audit-backend/internal/bizprofile"
	"seo-audit-backend/internal/llm"
	openai "seo-audit-backend/internal/llm/openai"
	"seo-audit-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	siteURL := flag.String("site", "", "Site URL the metrics belong to")
	metricsPath := flag.String("metrics", "", "Path to metrics snapshot JSON file")
	homepagePath := flag.String("homepage", "", "Path to homepage HTML file (optional)")
	promptVersion := flag.String("prompt-version", "v1", "Prompt version")
	outPath := flag.String("out", "", "Path to write raw JSON output (optional)")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	flag.Parse()

	if strings.TrimSpace(*siteURL) == "" {
		exitErr("site URL is required")
	}
	if strings.TrimSpace(*metricsPath) == "" {
		exitErr("metrics path is required")
	}

	metricsBytes, err := os.ReadFile(*metricsPath)
	if err != nil {
		exitErr(fmt.Sprintf("read metrics: %v", err))
	}
	if !json.Valid(metricsBytes) {
		exitErr("metrics file is not valid JSON")
	}

	profile := bizprofile.Default()
	if strings.TrimSpace(*homepagePath) != "" {
		htmlBytes, err := os.ReadFile(*homepagePath)
		if err != nil {
			exitErr(fmt.Sprintf("read homepage: %v", err))
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
		if err != nil {
			exitErr(fmt.Sprintf("parse homepage: %v", err))
		}
		profile = bizprofile.ClassifyDocument(doc, *siteURL)
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		exitErr(fmt.Sprintf("marshal business profile: %v", err))
	}

	client, err := buildClient(*provider, *model)
	if err != nil {
		exitErr(err.Error())
	}

	input := llm.GenerateInput{
		SiteURL:         *siteURL,
		MetricsJSON:     string(metricsBytes),
		BusinessProfile: string(profileJSON),
		PromptVersion:   *promptVersion,
	}

	raw, err := client.GenerateInsights(context.Background(), input)
	if err != nil {
		exitErr(fmt.Sprintf("llm generate: %v", err))
	}

	analysis := llm.DecodeAnalysis(raw)
	if strings.TrimSpace(analysis.ExecutiveSummary) == "" {
		exitErr("response missing executive summary")
	}

	pretty, err := prettyJSON(raw)
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
	if len(pretty) == 0 || pretty[len(pretty)-1] != '\n' {
		_, _ = os.Stdout.Write([]byte("\n"))
	}
}

func buildClient(provider, model string) (llm.Client, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "openai":
		return openai.NewClient(os.Getenv("OPENAI_API_KEY"), model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func prettyJSON(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
