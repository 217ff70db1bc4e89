package translator

import (
	"context"
	"errors"
	"testing"

	"github.com/shouni/gemini-philo-kit/pkg/domain"
	"github.com/shouni/gemini-philo-kit/pkg/interpret"
	"github.com/shouni/gemini-philo-kit/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewPhiloTranslator(t *testing.T) {
	t.Run("client が無いと初期化できない", func(t *testing.T) {
		_, err := NewPhiloTranslator(nil, nil)
		assert.Error(t, err)
	})
}

func TestPhiloTranslator_Translate(t *testing.T) {
	ctx := context.Background()

	t.Run("成功: 正しいモデルが選ばれ本文が返るのだ", func(t *testing.T) {
		client := &mockClient{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse("Being and Time"), nil
			},
		}
		tr, err := NewPhiloTranslator(client, nil)
		require.NoError(t, err)

		got, err := tr.Translate(ctx, domain.TranslateRequest{Text: "Varlık ve Zaman"})

		require.NoError(t, err)
		assert.Equal(t, "Being and Time", got.Text)
		assert.Equal(t, registry.ModelTranslateFast, client.lastModel)
	})

	t.Run("deep 指定で pro モデルが使われるのだ", func(t *testing.T) {
		client := &mockClient{}
		tr, _ := NewPhiloTranslator(client, nil)

		_, _ = tr.Translate(ctx, domain.TranslateRequest{Text: "öz ve varoluş", Deep: true})

		assert.Equal(t, registry.ModelTranslateDeep, client.lastModel)
	})

	t.Run("空入力はネットワーク呼び出し前に拒否されるのだ", func(t *testing.T) {
		client := &mockClient{}
		tr, _ := NewPhiloTranslator(client, nil)

		_, err := tr.Translate(ctx, domain.TranslateRequest{})

		assert.ErrorIs(t, err, domain.ErrEmptyInput)
		assert.Zero(t, client.calls, "空入力で通信してはいけないのだ")
	})

	t.Run("未認可なら ErrUnauthorized で通信しない", func(t *testing.T) {
		client := &mockClient{}
		tr, _ := NewPhiloTranslator(client, &mockKeys{ok: false})

		_, err := tr.Translate(ctx, domain.TranslateRequest{Text: "etik"})

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Zero(t, client.calls)
	})

	t.Run("上流エラーはラップして一度だけ伝播する（リトライなし）", func(t *testing.T) {
		upstream := errors.New("quota exhausted")
		client := &mockClient{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, upstream
			},
		}
		tr, _ := NewPhiloTranslator(client, nil)

		_, err := tr.Translate(ctx, domain.TranslateRequest{Text: "aşkınlık"})

		assert.ErrorIs(t, err, upstream)
		assert.Equal(t, 1, client.calls)
	})

	t.Run("空応答でもフォールバック文を返してエラーにしない", func(t *testing.T) {
		client := &mockClient{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return &genai.GenerateContentResponse{}, nil
			},
		}
		tr, _ := NewPhiloTranslator(client, nil)

		got, err := tr.Translate(ctx, domain.TranslateRequest{Text: "hiçlik"})

		require.NoError(t, err)
		assert.Equal(t, interpret.FallbackText, got.Text)
	})
}

func TestPhiloTranslator_Analyze(t *testing.T) {
	ctx := context.Background()
	att := &domain.Attachment{Data: []byte{0x89, 0x50}, MIMEType: "image/png"}

	t.Run("画像とテキスト指示の2パーツが送られるのだ", func(t *testing.T) {
		var sentParts []*genai.Part
		client := &mockClient{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				sentParts = contents[0].Parts
				return textResponse("mağara duvarındaki gölgeler"), nil
			},
		}
		tr, _ := NewPhiloTranslator(client, nil)

		got, err := tr.Analyze(ctx, domain.AnalyzeRequest{Attachment: att, Instruction: "gölgeleri yorumla"})

		require.NoError(t, err)
		assert.Equal(t, "mağara duvarındaki gölgeler", got.Text)
		require.Len(t, sentParts, 2)
		assert.NotNil(t, sentParts[0].InlineData)
		assert.Equal(t, "gölgeleri yorumla", sentParts[1].Text)
	})

	t.Run("添付なしは通信前に拒否されるのだ", func(t *testing.T) {
		client := &mockClient{}
		tr, _ := NewPhiloTranslator(client, nil)

		_, err := tr.Analyze(ctx, domain.AnalyzeRequest{})

		assert.ErrorIs(t, err, domain.ErrEmptyInput)
		assert.Zero(t, client.calls)
	})
}

func TestPhiloTranslator_LookupTerm(t *testing.T) {
	ctx := context.Background()

	t.Run("定義と出典（最大3件）が返るのだ", func(t *testing.T) {
		client := &mockClient{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				resp := textResponse("Öz: bir şeyi o şey yapan nitelik")
				resp.Candidates[0].GroundingMetadata = &genai.GroundingMetadata{
					GroundingChunks: []*genai.GroundingChunk{
						{Web: &genai.GroundingChunkWeb{URI: "https://a"}},
						{Web: &genai.GroundingChunkWeb{URI: "https://b"}},
						{Web: &genai.GroundingChunkWeb{URI: "https://c"}},
						{Web: &genai.GroundingChunkWeb{URI: "https://d"}},
					},
				}
				return resp, nil
			},
		}
		tr, _ := NewPhiloTranslator(client, nil)

		def, err := tr.LookupTerm(ctx, domain.LookupRequest{Term: "öz"})

		require.NoError(t, err)
		assert.Equal(t, "Öz: bir şeyi o şey yapan nitelik", def.Text)
		assert.Equal(t, []string{"https://a", "https://b", "https://c"}, def.Sources)
	})

	t.Run("空の用語は通信前に拒否されるのだ", func(t *testing.T) {
		client := &mockClient{}
		tr, _ := NewPhiloTranslator(client, nil)

		_, err := tr.LookupTerm(ctx, domain.LookupRequest{})

		assert.ErrorIs(t, err, domain.ErrEmptyInput)
		assert.Zero(t, client.calls)
	})
}
