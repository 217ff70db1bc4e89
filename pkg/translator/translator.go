// Package translator は翻訳・画像解析・用語検索の統合窓口です。
package translator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-philo-kit/pkg/adapters"
	"github.com/shouni/gemini-philo-kit/pkg/domain"
	"github.com/shouni/gemini-philo-kit/pkg/interpret"
	"github.com/shouni/gemini-philo-kit/pkg/request"
	"google.golang.org/genai"
)

// PhiloTranslator は、テキスト翻訳(Translate)と画像解析(Analyze)、
// 用語検索(LookupTerm)の3つを担当する統合トランスレーターです。
type PhiloTranslator struct {
	client adapters.GenerativeClient
	keys   adapters.KeySource
}

// NewPhiloTranslator は PhiloTranslator を初期化するのだ。
func NewPhiloTranslator(client adapters.GenerativeClient, keys adapters.KeySource) (*PhiloTranslator, error) {
	if client == nil {
		return nil, fmt.Errorf("client (adapters.GenerativeClient) is required")
	}
	// keys は nil を許容（認可済み扱い）

	return &PhiloTranslator{
		client: client,
		keys:   keys,
	}, nil
}

// invoke は認可確認、通信、という共通手順を一括で行うヘルパーなのだ。
func (t *PhiloTranslator) invoke(ctx context.Context, req *request.ModelRequest) (*genai.GenerateContentResponse, error) {
	ok, err := adapters.Authorized(ctx, t.keys)
	if err != nil {
		return nil, fmt.Errorf("認可確認に失敗しました: %w", err)
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	slog.Info("モデルへリクエストを送信します", "mode", req.Mode.String(), "model", req.Model)
	resp, err := t.client.GenerateContent(ctx, req.Model, req.Contents, req.Config)
	if err != nil {
		return nil, err // ラップは呼び出し元で行うのだ
	}
	return resp, nil
}

// Translate は哲学テキストを英語・トルコ語間で翻訳します。
// req.Deep が true のときだけ思考バジェット付きの深い翻訳になります。
func (t *PhiloTranslator) Translate(ctx context.Context, req domain.TranslateRequest) (*domain.TextResult, error) {
	mr, err := request.Translate(req)
	if err != nil {
		return nil, err
	}

	resp, err := t.invoke(ctx, mr)
	if err != nil {
		return nil, fmt.Errorf("翻訳リクエストに失敗しました: %w", err)
	}

	result := interpret.Text(resp)
	return &result, nil
}

// Analyze はアップロードされた画像を解析します。
// 文字を含む画像は翻訳され、含まない画像は象徴として読み直されます。
func (t *PhiloTranslator) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.TextResult, error) {
	mr, err := request.Analyze(req)
	if err != nil {
		return nil, err
	}

	resp, err := t.invoke(ctx, mr)
	if err != nil {
		return nil, fmt.Errorf("画像解析リクエストに失敗しました: %w", err)
	}

	result := interpret.Text(resp)
	return &result, nil
}

// LookupTerm は哲学用語の定義を検索グラウンディング付きで取得します。
// 出典URLは表示用に最大3件へ切り詰められます。
func (t *PhiloTranslator) LookupTerm(ctx context.Context, req domain.LookupRequest) (*domain.Definition, error) {
	mr, err := request.Lookup(req)
	if err != nil {
		return nil, err
	}

	resp, err := t.invoke(ctx, mr)
	if err != nil {
		return nil, fmt.Errorf("用語検索リクエストに失敗しました: %w", err)
	}

	def := interpret.Definition(resp)
	slog.Info("用語検索が完了しました", "sources", len(def.Sources))
	return &def, nil
}
