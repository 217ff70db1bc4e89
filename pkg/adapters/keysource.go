package adapters

import (
	"context"
	"os"
)

// KeySource はAPIキーの取得・確認を抽象化します。
// 実行環境がキー選択フローを持たない場合は nil を渡してよく、
// その場合は「認可済み」として扱われます。
type KeySource interface {
	// Ensure は有効なキーが使える状態かを返します。冪等です。
	Ensure(ctx context.Context) (bool, error)
	// Key は現在のAPIキーを返します。
	Key() string
}

// EnvKeySource は環境変数からAPIキーを読むシンプルな実装です。
type EnvKeySource struct {
	Var string // 空なら GEMINI_API_KEY
}

func (s *EnvKeySource) name() string {
	if s.Var == "" {
		return "GEMINI_API_KEY"
	}
	return s.Var
}

// Ensure は環境変数にキーが設定されているかを返します。
func (s *EnvKeySource) Ensure(ctx context.Context) (bool, error) {
	return os.Getenv(s.name()) != "", nil
}

// Key は環境変数の値をそのまま返します。
func (s *EnvKeySource) Key() string {
	return os.Getenv(s.name())
}

// Authorized は KeySource の有無を吸収したヘルパーです。
// nil のときは認可済みとみなします。
func Authorized(ctx context.Context, src KeySource) (bool, error) {
	if src == nil {
		return true, nil
	}
	return src.Ensure(ctx)
}
