package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
)

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に圧縮します。
// image.Decodeがサポートするフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ShrinkIfLarger は limit バイトを超える画像だけをJPEGへ再圧縮します。
// 圧縮に失敗した場合や縮まなかった場合は元データをそのまま返します。
// 添付画像をモデルへ送る前のサイズ抑制に使います。
func ShrinkIfLarger(data []byte, limit int, quality int) []byte {
	if len(data) <= limit {
		return data
	}
	compressed, err := CompressToJPEG(data, quality)
	if err != nil || len(compressed) >= len(data) {
		return data
	}
	return compressed
}
