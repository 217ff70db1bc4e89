package panels

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shouni/gemini-philo-kit/pkg/domain"
)

// ImaginePanel は画像生成画面のセッション状態を保持します。
type ImaginePanel struct {
	guard     inflightGuard
	generator ImageGenerator
	now       func() time.Time

	mu     sync.RWMutex
	size   domain.ImageSize
	result *domain.ImageResult
}

// NewImaginePanel は ImaginePanel を初期化するのだ。
func NewImaginePanel(gen ImageGenerator) (*ImaginePanel, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}
	return &ImaginePanel{
		generator: gen,
		now:       time.Now,
		size:      domain.Size2K,
	}, nil
}

// SetSize は出力サイズ（1K/2K/4K）を切り替えます。
func (p *ImaginePanel) SetSize(size domain.ImageSize) {
	p.mu.Lock()
	p.size = size
	p.mu.Unlock()
}

// Run はプロンプトから画像を1枚生成します。
// 「画像が生成されなかった」失敗は通信エラーとは別の種別で返ります。
func (p *ImaginePanel) Run(ctx context.Context, prompt string) (*domain.ImageResult, *Failure) {
	if err := p.guard.begin(); err != nil {
		return nil, Classify(err)
	}
	defer p.guard.end()

	p.mu.RLock()
	req := domain.ImagineRequest{Prompt: prompt, Size: p.size}
	p.mu.RUnlock()

	requestID := uuid.NewString()
	slog.Info("画像生成を開始します", "request_id", requestID, "size", req.Size)

	result, err := p.generator.Generate(ctx, req)
	if err != nil {
		slog.Warn("画像生成に失敗しました", "request_id", requestID, "error", err)
		return nil, Classify(err)
	}

	p.mu.Lock()
	p.result = result
	p.mu.Unlock()
	return result, nil
}

// Export は直近の生成画像をダウンロード用ファイルにします。
func (p *ImaginePanel) Export() (*domain.ExportFile, error) {
	p.mu.RLock()
	result := p.result
	p.mu.RUnlock()

	if result == nil {
		return nil, domain.ErrEmptyInput
	}
	return &domain.ExportFile{
		Name:     fmt.Sprintf("imagine-%d%s", p.now().UnixMilli(), extFromMIME(result.MIMEType)),
		Data:     result.Data,
		MIMEType: result.MIMEType,
	}, nil
}
