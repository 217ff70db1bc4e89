package panels

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shouni/gemini-philo-kit/pkg/adapters"
	"github.com/shouni/gemini-philo-kit/pkg/domain"
	"github.com/shouni/gemini-philo-kit/pkg/exporter"
)

// TranslatePanel は翻訳画面のセッション状態を保持します。
// 取り込んだファイルの形式を記録し、エクスポート時の表現選択に使います。
type TranslatePanel struct {
	guard      inflightGuard
	translator Translator
	formatter  *exporter.Formatter

	mu           sync.RWMutex
	text         string
	attachment   *domain.Attachment
	sourceFormat domain.SourceFormat
	result       *domain.TextResult
}

// NewTranslatePanel は TranslatePanel を初期化するのだ。
func NewTranslatePanel(tr Translator) (*TranslatePanel, error) {
	if tr == nil {
		return nil, fmt.Errorf("translator is required")
	}
	return &TranslatePanel{
		translator: tr,
		formatter:  exporter.NewFormatter("translation"),
	}, nil
}

// SetText は入力テキストを差し替えます。手入力はプレーンテキスト扱いです。
func (p *TranslatePanel) SetText(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.text = text
	p.attachment = nil
	p.sourceFormat = domain.FormatText
}

// ImportFile はユーザーが選択したファイルを取り込みます。
// テキスト系は入力テキストに、画像とPDFは添付になります。
// DOCXは取り込み境界で抽出済みのプレーンテキストを受け取ります。
// 未対応の形式は状態を一切変えずに拒否します。
func (p *TranslatePanel) ImportFile(name, mimeType string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(name))

	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case ext == ".txt" || ext == ".md" || ext == ".json" ||
		strings.HasPrefix(mimeType, "text/") || mimeType == "application/json":
		p.text = string(data)
		p.attachment = nil

	case ext == ".docx":
		// docx は上流で抽出済みテキストが渡される契約
		p.text = string(data)
		p.attachment = nil

	case ext == ".pdf" || mimeType == "application/pdf":
		att, err := adapters.FromBytes(data, "application/pdf")
		if err != nil {
			return err
		}
		p.attachment = att
		p.text = ""

	case strings.HasPrefix(mimeType, "image/") ||
		ext == ".png" || ext == ".jpg" || ext == ".jpeg" || ext == ".webp":
		att, err := adapters.FromBytes(data, mimeType)
		if err != nil {
			return err
		}
		p.attachment = att
		p.text = ""

	default:
		return fmt.Errorf("%q: %w", name, domain.ErrUnsupportedFile)
	}

	p.sourceFormat = exporter.DetectSourceFormat(mimeType, name)
	p.result = nil
	return nil
}

// Run は翻訳を1回実行します。失敗は常に表示可能な Failure として返します。
func (p *TranslatePanel) Run(ctx context.Context, deep bool) (*domain.TextResult, *Failure) {
	if err := p.guard.begin(); err != nil {
		return nil, Classify(err)
	}
	defer p.guard.end()

	p.mu.RLock()
	req := domain.TranslateRequest{Text: p.text, Attachment: p.attachment, Deep: deep}
	p.mu.RUnlock()

	requestID := uuid.NewString()
	slog.Info("翻訳を開始します", "request_id", requestID, "deep", deep)

	result, err := p.translator.Translate(ctx, req)
	if err != nil {
		slog.Warn("翻訳に失敗しました", "request_id", requestID, "error", err)
		return nil, Classify(err)
	}

	p.mu.Lock()
	p.result = result
	p.mu.Unlock()

	slog.Info("翻訳が完了しました", "request_id", requestID, "chars", len(result.Text))
	return result, nil
}

// Lookup は用語検索を1回実行します。パネルの翻訳結果には影響しません。
func (p *TranslatePanel) Lookup(ctx context.Context, term string) (*domain.Definition, *Failure) {
	if err := p.guard.begin(); err != nil {
		return nil, Classify(err)
	}
	defer p.guard.end()

	requestID := uuid.NewString()
	slog.Info("用語検索を開始します", "request_id", requestID)

	def, err := p.translator.LookupTerm(ctx, domain.LookupRequest{Term: term})
	if err != nil {
		slog.Warn("用語検索に失敗しました", "request_id", requestID, "error", err)
		return nil, Classify(err)
	}
	return def, nil
}

// Export は直近の翻訳結果を元入力の形式に応じたファイルへ変換します。
func (p *TranslatePanel) Export() (*domain.ExportFile, error) {
	p.mu.RLock()
	result := p.result
	sf := p.sourceFormat
	p.mu.RUnlock()

	if result == nil {
		return nil, domain.ErrEmptyInput
	}
	return p.formatter.Format(result.Text, sf)
}
