package translator

import (
	"context"

	"google.golang.org/genai"
)

// --- Mocks ---

// mockClient は adapters.GenerativeClient のテスト用モックなのだ。
type mockClient struct {
	generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	calls        int
	lastModel    string
}

func (m *mockClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.calls++
	m.lastModel = model
	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, contents, config)
	}
	return nil, nil
}

// mockKeys は adapters.KeySource のテスト用モックなのだ。
type mockKeys struct {
	ok  bool
	err error
}

func (m *mockKeys) Ensure(ctx context.Context) (bool, error) { return m.ok, m.err }
func (m *mockKeys) Key() string                              { return "mock-key" }

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
	}
}
