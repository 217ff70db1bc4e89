package exporter

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"
)

// DOCXはOOXMLパーツを詰めたZIPコンテナです。
// Wordが開ける最小構成（コンテンツタイプ宣言、ルートリレーション、本文）だけを持ちます。
const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>`

const docxDocumentFooter = `<w:sectPr/></w:body></w:document>`

// paragraphSpacing は各段落の後に入れる固定スペーシング（twentieths of a point）です。
const paragraphSpacing = "200"

// buildDocx はテキストを改行で段落に分割した単一セクションのDOCXを組み立てます。
func buildDocx(text string) ([]byte, error) {
	var doc bytes.Buffer
	doc.WriteString(docxDocumentHeader)

	for _, line := range strings.Split(text, "\n") {
		// Windows改行の残骸を段落に持ち込まない
		line = strings.TrimSuffix(line, "\r")
		doc.WriteString(`<w:p><w:pPr><w:spacing w:after="` + paragraphSpacing + `"/></w:pPr><w:r><w:t xml:space="preserve">`)
		if err := xml.EscapeText(&doc, []byte(line)); err != nil {
			return nil, err
		}
		doc.WriteString(`</w:t></w:r></w:p>`)
	}
	doc.WriteString(docxDocumentFooter)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		body []byte
	}{
		{"[Content_Types].xml", []byte(docxContentTypes)},
		{"_rels/.rels", []byte(docxRels)},
		{"word/document.xml", doc.Bytes()},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(p.body); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
