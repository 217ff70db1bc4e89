package domain

// Mode は利用者が選択した操作種別です。
// リクエストごとに必ず1つだけ設定され、構築後は変更されません。
type Mode int

const (
	ModeTranslateFast Mode = iota
	ModeTranslateDeep
	ModeAnalyze
	ModeGenerateImage
	ModeTermLookup
)

// String はログ出力用のモード名を返します。
func (m Mode) String() string {
	switch m {
	case ModeTranslateFast:
		return "translate-fast"
	case ModeTranslateDeep:
		return "translate-deep"
	case ModeAnalyze:
		return "analyze"
	case ModeGenerateImage:
		return "generate-image"
	case ModeTermLookup:
		return "term-lookup"
	default:
		return "unknown"
	}
}

// Attachment はリクエストに添付される単一のバイナリ（画像またはPDF）です。
// 1リクエストにつき最大1件で、リクエスト完了後は破棄されます。
type Attachment struct {
	Data     []byte
	MIMEType string
}

// SourceFormat は入力元の文書形式です。エクスポート表現の選択に使われます。
type SourceFormat int

const (
	FormatText SourceFormat = iota // プレーンテキスト（md/json等もここに含む）
	FormatDocx                     // 段落構造の文書
	FormatPDF                      // ページ単位の文書
)

func (f SourceFormat) String() string {
	switch f {
	case FormatDocx:
		return "docx"
	case FormatPDF:
		return "pdf"
	default:
		return "text"
	}
}

// ImageSize は画像生成の出力サイズです。
type ImageSize string

const (
	Size1K ImageSize = "1K"
	Size2K ImageSize = "2K"
	Size4K ImageSize = "4K"
)

// TranslateRequest は哲学テキストの翻訳要求です。
// Text と Attachment の少なくとも一方が必要です。
type TranslateRequest struct {
	Text       string
	Attachment *Attachment
	Deep       bool // true なら思考バジェット付きの深い翻訳を行う
}

// AnalyzeRequest は画像解析の要求です。Attachment は必須です。
type AnalyzeRequest struct {
	Attachment  *Attachment
	Instruction string // 空なら既定の指示文を使う
}

// ImagineRequest はテキストプロンプトからの画像生成要求です。
type ImagineRequest struct {
	Prompt string
	Size   ImageSize // 空なら Size2K
}

// LookupRequest は哲学用語の定義検索要求です。
type LookupRequest struct {
	Term string
}

// TextResult は翻訳・解析の結果テキストです。
type TextResult struct {
	Text string
}

// ImageResult は生成された画像データとそのメタデータです。
type ImageResult struct {
	Data     []byte
	MIMEType string
}

// Definition は用語検索の結果です。
// Sources は検索グラウンディングの出典URLで、表示用に最大3件です。
type Definition struct {
	Text    string
	Sources []string
}

// ExportFile はエクスポート結果のバイト列とファイル名です。
type ExportFile struct {
	Name     string
	Data     []byte
	MIMEType string
}
