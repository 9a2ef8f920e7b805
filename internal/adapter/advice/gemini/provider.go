// Package gemini implements the advice provider on top of the Gemini API.
package gemini

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Fixed responses returned instead of model output.
const (
	FallbackNotConfigured = "請配置 Gemini API Key 以獲得 AI 財務分析建議。目前無法連接到 AI 服務。"
	FallbackUnavailable   = "AI 服務暫時無法使用，請稍後再試。"
	FallbackEmpty         = "無法生成建議。"
)

const promptPreamble = "作為一位專業的個人財務顧問，請根據以下財務數據摘要提供簡短、具體的理財建議。\n" +
	"請關注資產配置、風險管理以及收支狀況。使用繁體中文回答。\n\n" +
	"財務數據摘要:\n"

// contentGenerator is the subset of *genai.Models the provider uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Provider asks a Gemini model for financial advice.
type Provider struct {
	models contentGenerator
	model  string
	log    zerolog.Logger
}

// NewProvider creates a Provider. An empty apiKey yields a provider that
// always answers FallbackNotConfigured without touching the network.
func NewProvider(ctx context.Context, apiKey, model string, logger zerolog.Logger) (*Provider, error) {
	p := &Provider{
		model: model,
		log:   logger.With().Str("component", "gemini_advice").Logger(),
	}
	if p.model == "" {
		p.model = DefaultModel
	}

	if apiKey == "" {
		p.log.Warn().Msg("no Gemini API key configured, advice disabled")
		return p, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	p.models = client.Models

	return p, nil
}

func newProviderWithGenerator(gen contentGenerator, model string, logger zerolog.Logger) *Provider {
	return &Provider{models: gen, model: model, log: logger}
}

// Advise returns the model's advice for summary. It never fails.
func (p *Provider) Advise(ctx context.Context, summary string) string {
	if p.models == nil {
		return FallbackNotConfigured
	}

	resp, err := p.models.GenerateContent(ctx, p.model, genai.Text(Prompt(summary)), nil)
	if err != nil {
		p.log.Error().Err(err).Str("model", p.model).Msg("gemini request failed")
		return FallbackUnavailable
	}

	if resp == nil {
		return FallbackEmpty
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return FallbackEmpty
	}

	return text
}

// Prompt wraps summary in the advisor instructions.
func Prompt(summary string) string {
	return promptPreamble + summary
}
