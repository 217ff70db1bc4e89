// Package interpret はモデルの生応答から利用可能な結果を取り出します。
package interpret

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-philo-kit/pkg/domain"
	"google.golang.org/genai"
)

// FallbackText はモデルが応答したもののテキストを含まなかったときの代替文です。
const FallbackText = "No response text was returned."

// MaxSources は定義の出典として表示するURLの上限です。
const MaxSources = 3

// primaryText は最初の候補のテキストパーツを連結して返します。
// 思考パーツ（Thought）は結果に含めません。
func primaryText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}

// Text は翻訳・解析応答の本文を返します。
// テキストが無くてもエラーにせず、必ず何らかの文字列を返します。
func Text(resp *genai.GenerateContentResponse) domain.TextResult {
	text := primaryText(resp)
	if text == "" {
		text = FallbackText
	}
	return domain.TextResult{Text: text}
}

// Definition は用語検索応答から定義文と出典URLを取り出します。
// URLは出現順を保ち、URIの無いエントリを捨て、リテラル一致で重複を除いた上で
// 先頭 MaxSources 件に切り詰めます。
func Definition(resp *genai.GenerateContentResponse) domain.Definition {
	def := domain.Definition{Text: Text(resp).Text}

	if resp == nil || len(resp.Candidates) == 0 {
		return def
	}
	gm := resp.Candidates[0].GroundingMetadata
	if gm == nil {
		return def
	}

	seen := make(map[string]bool)
	for _, chunk := range gm.GroundingChunks {
		if len(def.Sources) == MaxSources {
			break
		}
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		uri := chunk.Web.URI
		if seen[uri] {
			continue
		}
		seen[uri] = true
		def.Sources = append(def.Sources, uri)
	}
	return def
}

// Image は応答のコンテンツパーツを順に走査し、最初のバイナリパーツを
// 画像結果として返します。見つからない場合は domain.ErrNoImage を返します。
// これは通信エラーとは別の確定失敗として呼び出し側が区別できます。
func Image(resp *genai.GenerateContentResponse) (*domain.ImageResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty model response: %w", domain.ErrNoImage)
	}

	candidate := resp.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &domain.ImageResult{
					Data:     part.InlineData.Data,
					MIMEType: part.InlineData.MIMEType,
				}, nil
			}
		}
	}

	// 安全フィルター等で打ち切られた場合は理由を添える
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("generation stopped (FinishReason: %s): %w", candidate.FinishReason, domain.ErrNoImage)
	}
	return nil, domain.ErrNoImage
}
