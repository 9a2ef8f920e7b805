package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	resp *genai.GenerateContentResponse
	err  error

	model  string
	prompt string
	calls  int
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}

	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(text, genai.RoleModel)},
		},
	}
}

func TestNewProvider_NoKey(t *testing.T) {
	p, err := NewProvider(context.Background(), "", "", zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, p.model)
	assert.Equal(t, FallbackNotConfigured, p.Advise(context.Background(), "總資產: 1 TWD\n"))
}

func TestProvider_Advise(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
		want string
	}{
		{
			name: "model text",
			gen:  &fakeGenerator{resp: textResponse("  建議分散投資。\n")},
			want: "建議分散投資。",
		},
		{
			name: "request error",
			gen:  &fakeGenerator{err: errors.New("quota exceeded")},
			want: FallbackUnavailable,
		},
		{
			name: "nil response",
			gen:  &fakeGenerator{},
			want: FallbackEmpty,
		},
		{
			name: "no candidates",
			gen:  &fakeGenerator{resp: &genai.GenerateContentResponse{}},
			want: FallbackEmpty,
		},
		{
			name: "blank text",
			gen:  &fakeGenerator{resp: textResponse("   ")},
			want: FallbackEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProviderWithGenerator(tt.gen, DefaultModel, zerolog.Nop())

			got := p.Advise(context.Background(), "現金: 300000 TWD\n")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, tt.gen.calls)
			assert.Equal(t, DefaultModel, tt.gen.model)
		})
	}
}

func TestProvider_AdviseSendsSummary(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse("ok")}
	p := newProviderWithGenerator(gen, "custom-model", zerolog.Nop())

	p.Advise(context.Background(), "主要持股: 台積電\n")

	assert.Equal(t, "custom-model", gen.model)
	assert.Contains(t, gen.prompt, "使用繁體中文回答")
	assert.Contains(t, gen.prompt, "財務數據摘要:\n主要持股: 台積電\n")
}
