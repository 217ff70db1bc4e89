package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthError(t *testing.T) {
	t.Run("既知の失敗文言をキー起因と判定する", func(t *testing.T) {
		cases := []string{
			"googleapi: Error 400: API key not valid. Please pass a valid API key.",
			"rpc error: code = PermissionDenied desc = PERMISSION_DENIED",
			"error: API_KEY_INVALID",
		}
		for _, msg := range cases {
			assert.True(t, IsAuthError(errors.New(msg)), "msg=%q", msg)
		}
	})

	t.Run("それ以外のエラーはキー起因としない", func(t *testing.T) {
		assert.False(t, IsAuthError(nil))
		assert.False(t, IsAuthError(errors.New("deadline exceeded")))
		assert.False(t, IsAuthError(errors.New("quota exhausted")))
	})
}

func TestEnvKeySource(t *testing.T) {
	ctx := context.Background()

	t.Run("環境変数があれば認可済みなのだ", func(t *testing.T) {
		t.Setenv("PHILO_TEST_KEY", "dummy-key")
		src := &EnvKeySource{Var: "PHILO_TEST_KEY"}

		ok, err := src.Ensure(ctx)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "dummy-key", src.Key())
	})

	t.Run("環境変数が無ければ未認可なのだ", func(t *testing.T) {
		t.Setenv("PHILO_TEST_KEY", "")
		src := &EnvKeySource{Var: "PHILO_TEST_KEY"}

		ok, err := src.Ensure(ctx)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("KeySource が無い実行環境は認可済み扱いなのだ", func(t *testing.T) {
		ok, err := Authorized(ctx, nil)
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestNewGeminiClient(t *testing.T) {
	t.Run("空のAPIキーは拒否する", func(t *testing.T) {
		_, err := NewGeminiClient(context.Background(), "")
		assert.Error(t, err)
		assert.True(t, IsAuthError(err))
	})
}
