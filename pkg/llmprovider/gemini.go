package llmprovider

import (
	"context"

	"jobfinder-chatbot/pkg/gemini"
)

const geminiProviderName = "gemini"

// GeminiAdapter exposes a gemini.IGemini as a Provider.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, toGeminiRequest(req))
	if err != nil {
		return nil, err
	}

	usage := &Usage{}
	if u := resp.Usage; u != nil {
		usage.InputTokens, usage.OutputTokens, usage.TotalTokens = u.InputTokens, u.OutputTokens, u.TotalTokens
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: geminiProviderName,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

func (a *GeminiAdapter) Name() string  { return geminiProviderName }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// toGeminiRequest narrows the temperature to the SDK's float32 and keeps nil as nil.
func toGeminiRequest(req *Request) *gemini.Request {
	out := &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Contents:          req.Parts,
		MaxTokens:         int32(req.MaxTokens),
	}
	if req.Temperature != nil {
		t := float32(*req.Temperature)
		out.Temperature = &t
	}
	return out
}
