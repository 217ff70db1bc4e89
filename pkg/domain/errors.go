package domain

import "errors"

// 境界で分類される失敗種別のセンチネルです。
// 呼び出し側は errors.Is で種別を判定し、表示用メッセージへ変換します。
var (
	// ErrEmptyInput はテキストも添付もない状態でのリクエスト組み立てです。
	// ネットワーク呼び出しの前に検出されます。
	ErrEmptyInput = errors.New("empty input: no text and no attachment")

	// ErrNoImage はモデルが応答したものの画像パーツを含まなかった場合です。
	// 通信エラーとは区別して扱います。
	ErrNoImage = errors.New("no image produced")

	// ErrUnsupportedFile は未対応の形式のファイルが取り込まれた場合です。
	ErrUnsupportedFile = errors.New("unsupported file type")

	// ErrUnauthorized は有効なAPIキーが得られなかった場合です。
	ErrUnauthorized = errors.New("api key not authorized")
)
