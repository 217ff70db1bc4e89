package panels

import (
	"context"

	"github.com/shouni/gemini-philo-kit/pkg/domain"
)

// --- Mocks ---

// mockTranslator は Translator インターフェースのテスト用モックなのだ。
type mockTranslator struct {
	translateFunc func(ctx context.Context, req domain.TranslateRequest) (*domain.TextResult, error)
	lookupFunc    func(ctx context.Context, req domain.LookupRequest) (*domain.Definition, error)
	lastRequest   domain.TranslateRequest
}

func (m *mockTranslator) Translate(ctx context.Context, req domain.TranslateRequest) (*domain.TextResult, error) {
	m.lastRequest = req
	if m.translateFunc != nil {
		return m.translateFunc(ctx, req)
	}
	return &domain.TextResult{Text: "çeviri"}, nil
}

func (m *mockTranslator) LookupTerm(ctx context.Context, req domain.LookupRequest) (*domain.Definition, error) {
	if m.lookupFunc != nil {
		return m.lookupFunc(ctx, req)
	}
	return &domain.Definition{Text: "tanım"}, nil
}

type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, req domain.AnalyzeRequest) (*domain.TextResult, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.TextResult, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, req)
	}
	return &domain.TextResult{Text: "analiz"}, nil
}

// mockFetcher は AttachmentFetcher のテスト用モックなのだ。
type mockFetcher struct {
	att  *domain.Attachment
	err  error
	urls []string
}

func (m *mockFetcher) FetchAttachment(ctx context.Context, rawURL string) (*domain.Attachment, error) {
	m.urls = append(m.urls, rawURL)
	if m.err != nil {
		return nil, m.err
	}
	return m.att, nil
}

type mockGenerator struct {
	generateFunc func(ctx context.Context, req domain.ImagineRequest) (*domain.ImageResult, error)
}

func (m *mockGenerator) Generate(ctx context.Context, req domain.ImagineRequest) (*domain.ImageResult, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return &domain.ImageResult{Data: []byte("img"), MIMEType: "image/png"}, nil
}
