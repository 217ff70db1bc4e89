// Package imagine はテキストプロンプトからの挿絵生成を担当します。
package imagine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-philo-kit/pkg/adapters"
	"github.com/shouni/gemini-philo-kit/pkg/domain"
	"github.com/shouni/gemini-philo-kit/pkg/interpret"
	"github.com/shouni/gemini-philo-kit/pkg/request"
)

// ImageGenerator はビジネスロジック層が利用する画像生成の窓口です。
type ImageGenerator interface {
	Generate(ctx context.Context, req domain.ImagineRequest) (*domain.ImageResult, error)
}

// GeminiImagine は画像生成リクエストの組み立て、通信、解析を担当するジェネレーターです。
type GeminiImagine struct {
	client adapters.GenerativeClient
	keys   adapters.KeySource
}

// NewGeminiImagine は GeminiImagine を初期化するのだ。
func NewGeminiImagine(client adapters.GenerativeClient, keys adapters.KeySource) (*GeminiImagine, error) {
	if client == nil {
		return nil, fmt.Errorf("client (adapters.GenerativeClient) is required")
	}

	return &GeminiImagine{
		client: client,
		keys:   keys,
	}, nil
}

// Generate は単一プロンプトから1枚の画像を生成します。
// 応答に画像パーツが無い場合は domain.ErrNoImage を返し、
// 通信エラーとは区別して呼び出し側が扱えるようにします。
func (g *GeminiImagine) Generate(ctx context.Context, req domain.ImagineRequest) (*domain.ImageResult, error) {
	mr, err := request.Imagine(req)
	if err != nil {
		return nil, err
	}

	ok, err := adapters.Authorized(ctx, g.keys)
	if err != nil {
		return nil, fmt.Errorf("認可確認に失敗しました: %w", err)
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	slog.Info("画像生成リクエストを送信します", "model", mr.Model, "size", mr.Config.ImageConfig.ImageSize)
	resp, err := g.client.GenerateContent(ctx, mr.Model, mr.Contents, mr.Config)
	if err != nil {
		return nil, fmt.Errorf("Gemini画像生成エラー: %w", err)
	}

	img, err := interpret.Image(resp)
	if err != nil {
		return nil, err
	}

	slog.Info("画像生成が完了しました", "mime_type", img.MIMEType, "bytes", len(img.Data))
	return img, nil
}
