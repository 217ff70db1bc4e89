// Package exporter は最終テキストをダウンロード可能な表現へ変換します。
// 元入力の形式に応じて、プレーンテキスト・段落文書(DOCX)・ページ文書(PDF)の
// いずれかを選びます。
package exporter

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/shouni/gemini-philo-kit/pkg/domain"
)

const (
	mimeText = "text/plain; charset=utf-8"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePDF  = "application/pdf"
)

// Formatter はエクスポート変換器です。
// Now はファイル名のタイムスタンプ生成に使われ、テストで差し替えられます。
type Formatter struct {
	Kind string // ファイル名の接頭辞（例: "translation"）
	Now  func() time.Time
}

// NewFormatter は Formatter を初期化します。kind が空なら "translation" です。
func NewFormatter(kind string) *Formatter {
	if kind == "" {
		kind = "translation"
	}
	return &Formatter{Kind: kind, Now: time.Now}
}

// Format はテキストを元形式に応じたバイト列とファイル名へ変換します。
// ファイル名は <kind>-<ミリ秒タイムスタンプ>.<拡張子> で、
// セッション内での衝突を避けられる粒度を持ちます。
func (f *Formatter) Format(text string, sf domain.SourceFormat) (*domain.ExportFile, error) {
	switch sf {
	case domain.FormatDocx:
		data, err := buildDocx(text)
		if err != nil {
			return nil, fmt.Errorf("DOCXの組み立てに失敗しました: %w", err)
		}
		return f.file(data, ".docx", mimeDocx), nil

	case domain.FormatPDF:
		data, err := buildPDF(text)
		if err != nil {
			return nil, fmt.Errorf("PDFの組み立てに失敗しました: %w", err)
		}
		return f.file(data, ".pdf", mimePDF), nil

	default:
		// プレーンテキストはUTF-8のまま逐語的に書き出す
		return f.file([]byte(text), ".txt", mimeText), nil
	}
}

func (f *Formatter) file(data []byte, ext, mime string) *domain.ExportFile {
	now := f.Now
	if now == nil {
		now = time.Now
	}
	return &domain.ExportFile{
		Name:     fmt.Sprintf("%s-%d%s", f.Kind, now().UnixMilli(), ext),
		Data:     data,
		MIMEType: mime,
	}
}

// DetectSourceFormat は添付のMIMEタイプとファイル名からエクスポート形式を推定します。
// 拡張子とメディアタイプによる推定であり、保証ではなくベストエフォートの分類です
// （.txt に改名されたPDFはプレーンテキスト扱いになります）。
func DetectSourceFormat(mimeType, filename string) domain.SourceFormat {
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case mimeType == mimePDF || ext == ".pdf":
		return domain.FormatPDF
	case mimeType == mimeDocx || ext == ".docx":
		return domain.FormatDocx
	default:
		return domain.FormatText
	}
}
