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

// adapters.AttachmentCore が取得窓口の契約を満たすことの確認
var _ AttachmentFetcher = (*adapters.AttachmentCore)(nil)

// AnalyzePanel は画像解析画面のセッション状態を保持します。
type AnalyzePanel struct {
	guard     inflightGuard
	analyzer  Analyzer
	fetcher   AttachmentFetcher
	formatter *exporter.Formatter

	mu          sync.RWMutex
	attachment  *domain.Attachment
	instruction string
	result      *domain.TextResult
}

// NewAnalyzePanel は AnalyzePanel を初期化するのだ。
// fetcher は nil を許容し、その場合リモートURL取り込みは使えません。
func NewAnalyzePanel(an Analyzer, fetcher AttachmentFetcher) (*AnalyzePanel, error) {
	if an == nil {
		return nil, fmt.Errorf("analyzer is required")
	}
	return &AnalyzePanel{
		analyzer:  an,
		fetcher:   fetcher,
		formatter: exporter.NewFormatter("analysis"),
	}, nil
}

// SetInstruction は自由指示を差し替えます。空なら既定の指示が使われます。
func (p *AnalyzePanel) SetInstruction(instruction string) {
	p.mu.Lock()
	p.instruction = instruction
	p.mu.Unlock()
}

// ImportFile は解析対象の画像を取り込みます。画像以外は拒否します。
// 新しい取り込みは前の添付と結果を置き換えます。
func (p *AnalyzePanel) ImportFile(name, mimeType string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(name))
	isImage := strings.HasPrefix(mimeType, "image/") ||
		ext == ".png" || ext == ".jpg" || ext == ".jpeg" || ext == ".webp"
	if !isImage {
		return fmt.Errorf("%q: %w", name, domain.ErrUnsupportedFile)
	}

	att, err := adapters.FromBytes(data, mimeType)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.attachment = att
	p.result = nil
	p.mu.Unlock()
	return nil
}

// ImportURL は解析対象の画像をリモートURL（https または gs://）から取り込みます。
// 取得した添付が画像でなければ状態を変えずに拒否します。
func (p *AnalyzePanel) ImportURL(ctx context.Context, rawURL string) error {
	if p.fetcher == nil {
		return fmt.Errorf("remote import is not configured")
	}

	att, err := p.fetcher.FetchAttachment(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("リモート画像の取得に失敗しました: %w", err)
	}
	if !strings.HasPrefix(att.MIMEType, "image/") {
		return fmt.Errorf("%q: %w", rawURL, domain.ErrUnsupportedFile)
	}

	p.mu.Lock()
	p.attachment = att
	p.result = nil
	p.mu.Unlock()
	return nil
}

// Run は画像解析を1回実行します。
func (p *AnalyzePanel) Run(ctx context.Context) (*domain.TextResult, *Failure) {
	if err := p.guard.begin(); err != nil {
		return nil, Classify(err)
	}
	defer p.guard.end()

	p.mu.RLock()
	req := domain.AnalyzeRequest{Attachment: p.attachment, Instruction: p.instruction}
	p.mu.RUnlock()

	requestID := uuid.NewString()
	slog.Info("画像解析を開始します", "request_id", requestID)

	result, err := p.analyzer.Analyze(ctx, req)
	if err != nil {
		slog.Warn("画像解析に失敗しました", "request_id", requestID, "error", err)
		return nil, Classify(err)
	}

	p.mu.Lock()
	p.result = result
	p.mu.Unlock()
	return result, nil
}

// Export は直近の解析結果をプレーンテキストとして書き出します。
// 解析の入力は常に画像なので、段落・ページ文書への変換は行いません。
func (p *AnalyzePanel) Export() (*domain.ExportFile, error) {
	p.mu.RLock()
	result := p.result
	p.mu.RUnlock()

	if result == nil {
		return nil, domain.ErrEmptyInput
	}
	return p.formatter.Format(result.Text, domain.FormatText)
}
