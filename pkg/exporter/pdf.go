package exporter

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfHeaderText     = "Translation"
	pdfHeaderFontSize = 18.0
	pdfBodyFontSize   = 12.0
	pdfBodyLineHeight = 6.0
)

// buildPDF はテキストを固定ヘッダ付きの単一ボディブロックとして組版します。
// 本文は行ごとの段落ではなく MultiCell による1ブロックです。
// 本文は英語・トルコ語なので、コードページはトルコ語字母（ğ, ş, ı, İ等）を
// 持つ cp1254 を使います。
func buildPDF(text string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(pdfHeaderText, false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("cp1254")

	pdf.SetFont("Helvetica", "B", pdfHeaderFontSize)
	pdf.CellFormat(0, 12, tr(pdfHeaderText), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", pdfBodyFontSize)
	pdf.MultiCell(0, pdfBodyLineHeight, tr(text), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
