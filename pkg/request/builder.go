// Package request は利用者の入力をモデルへの送信リクエストに組み立てます。
// モードごとの分岐はすべてここに閉じ、モデルIDとシステム指示は registry から引きます。
package request

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-philo-kit/pkg/domain"
	"github.com/shouni/gemini-philo-kit/pkg/registry"
	"google.golang.org/genai"
)

// ModelRequest は完全に解決された送信リクエストです。
// 1リクエストにつきモードは1つで、構築後に変更されることはありません。
type ModelRequest struct {
	Mode     domain.Mode
	Model    string
	Contents []*genai.Content
	Config   *genai.GenerateContentConfig
}

// baseConfig は ModeConfig を genai の生成設定へ写します。
func baseConfig(mc registry.ModeConfig) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if mc.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(mc.SystemInstruction)},
		}
	}
	if mc.ThinkingBudget != nil {
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: mc.ThinkingBudget}
	}
	if mc.EnableSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return cfg
}

func userContent(parts ...*genai.Part) []*genai.Content {
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

// Translate は翻訳リクエストを組み立てます。
// テキストと添付の両方が空の場合は domain.ErrEmptyInput を返し、
// 呼び出し側はネットワーク呼び出しを行ってはいけません。
func Translate(req domain.TranslateRequest) (*ModelRequest, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" && req.Attachment == nil {
		return nil, domain.ErrEmptyInput
	}

	mode := domain.ModeTranslateFast
	if req.Deep {
		mode = domain.ModeTranslateDeep
	}
	mc := registry.Config(mode)

	var parts []*genai.Part
	if req.Attachment != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Attachment.Data, req.Attachment.MIMEType))
		if text != "" {
			parts = append(parts, genai.NewPartFromText(
				fmt.Sprintf("Translate the attached document. Additional context from the user:\n%s", text)))
		} else {
			parts = append(parts, genai.NewPartFromText("Translate the attached document."))
		}
	} else {
		parts = append(parts, genai.NewPartFromText(
			fmt.Sprintf("Translate the following philosophical text:\n\n%s", text)))
	}

	return &ModelRequest{
		Mode:     mode,
		Model:    mc.Model,
		Contents: userContent(parts...),
		Config:   baseConfig(mc),
	}, nil
}

// Analyze は画像解析リクエストを組み立てます。添付は必須で、常に1枚です。
// 自由指示が無い場合は既定の指示文を補います。
func Analyze(req domain.AnalyzeRequest) (*ModelRequest, error) {
	if req.Attachment == nil || len(req.Attachment.Data) == 0 {
		return nil, domain.ErrEmptyInput
	}

	mc := registry.Config(domain.ModeAnalyze)

	instruction := strings.TrimSpace(req.Instruction)
	if instruction == "" {
		instruction = registry.DefaultAnalyzeInstruction
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(req.Attachment.Data, req.Attachment.MIMEType),
		genai.NewPartFromText(instruction),
	}

	return &ModelRequest{
		Mode:     domain.ModeAnalyze,
		Model:    mc.Model,
		Contents: userContent(parts...),
		Config:   baseConfig(mc),
	}, nil
}

// Imagine は画像生成リクエストを組み立てます。
// アスペクト比は正方形固定、サイズ未指定は Size2K です。
func Imagine(req domain.ImagineRequest) (*ModelRequest, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, domain.ErrEmptyInput
	}

	mc := registry.Config(domain.ModeGenerateImage)

	size := req.Size
	if size == "" {
		size = domain.Size2K
	}

	cfg := baseConfig(mc)
	cfg.ResponseModalities = []string{"IMAGE", "TEXT"}
	cfg.ImageConfig = &genai.ImageConfig{
		AspectRatio: mc.AspectRatio,
		ImageSize:   string(size),
	}

	return &ModelRequest{
		Mode:     domain.ModeGenerateImage,
		Model:    mc.Model,
		Contents: userContent(genai.NewPartFromText(prompt)),
		Config:   cfg,
	}, nil
}

// Lookup は用語検索リクエストを組み立てます。検索グラウンディングを有効化します。
func Lookup(req domain.LookupRequest) (*ModelRequest, error) {
	term := strings.TrimSpace(req.Term)
	if term == "" {
		return nil, domain.ErrEmptyInput
	}

	mc := registry.Config(domain.ModeTermLookup)

	return &ModelRequest{
		Mode:     domain.ModeTermLookup,
		Model:    mc.Model,
		Contents: userContent(genai.NewPartFromText(fmt.Sprintf(registry.TermLookupTemplate, term))),
		Config:   baseConfig(mc),
	}, nil
}
