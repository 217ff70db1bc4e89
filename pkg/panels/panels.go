// Package panels は翻訳・解析・画像生成の3画面が持つセッション状態を管理します。
// 各パネルは同時に1つのリクエストしか走らせず、すべての失敗を
// 表示可能なメッセージ(Failure)へ変換してから返します。
package panels

import (
	"context"
	"sync"

	"github.com/shouni/gemini-philo-kit/pkg/domain"
)

// Translator は翻訳パネルが利用する操作の窓口です。
type Translator interface {
	Translate(ctx context.Context, req domain.TranslateRequest) (*domain.TextResult, error)
	LookupTerm(ctx context.Context, req domain.LookupRequest) (*domain.Definition, error)
}

// Analyzer は解析パネルが利用する操作の窓口です。
type Analyzer interface {
	Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.TextResult, error)
}

// ImageGenerator は画像生成パネルが利用する操作の窓口です。
type ImageGenerator interface {
	Generate(ctx context.Context, req domain.ImagineRequest) (*domain.ImageResult, error)
}

// AttachmentFetcher はリモートURL（https または gs://）から添付を取得する窓口です。
// adapters.AttachmentCore がこれを実装します。
type AttachmentFetcher interface {
	FetchAttachment(ctx context.Context, rawURL string) (*domain.Attachment, error)
}

// inflightGuard は「1パネルにつき同時1リクエスト」の契約を守るための簡単なゲートです。
type inflightGuard struct {
	mu   sync.Mutex
	busy bool
}

// begin は実行権を確保します。既に実行中なら ErrBusy を返します。
func (g *inflightGuard) begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return ErrBusy
	}
	g.busy = true
	return nil
}

func (g *inflightGuard) end() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}

// extFromMIME は画像MIMEタイプから保存用の拡張子を選びます。
func extFromMIME(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
