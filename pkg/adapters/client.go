// Package adapters は Gemini API との通信と添付データの準備を担当します。
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/shouni/gemini-philo-kit/pkg/domain"
	"google.golang.org/genai"
)

// GenerativeClient は上位層が利用するモデル呼び出しの窓口です。
// 1回のリクエスト/レスポンスのみで、ストリーミングやリトライは行いません。
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient は genai SDK を包む実装です。
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient はAPIキーを使って GeminiClient を初期化します。
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is empty: %w", domain.ErrUnauthorized)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genaiクライアントの初期化に失敗しました: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// GenerateContent はモデル呼び出しをそのまま委譲します。
// タイムアウトは呼び出し側の ctx が持ち込むものに従います。
func (c *GeminiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.client.Models.GenerateContent(ctx, model, contents, config)
}

// IsAuthError は上流エラーがAPIキー起因かを判定します。
// 上流が構造化コードを公開していないため、既知の失敗文言との
// 文字列一致によるベストエフォート判定です。
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, phrase := range []string{
		"API key not valid",
		"API_KEY_INVALID",
		"PERMISSION_DENIED",
		"api key is empty",
	} {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}
