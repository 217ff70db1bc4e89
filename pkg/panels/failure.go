package panels

import (
	"errors"

	"github.com/shouni/gemini-philo-kit/pkg/adapters"
	"github.com/shouni/gemini-philo-kit/pkg/domain"
)

// FailureKind は利用者操作の境界で分類される失敗種別です。
type FailureKind int

const (
	KindInputRejected FailureKind = iota
	KindAuthorization
	KindUpstreamEmpty
	KindUpstreamFailure
	KindUnsupportedInput
)

// ErrBusy は同一パネルで別のリクエストが進行中のときに返されます。
var ErrBusy = errors.New("another request is in flight")

// Failure は表示可能なメッセージへ変換済みの失敗です。
// パネルの操作はエラーを外へ素通しせず、必ずこの形に畳みます。
type Failure struct {
	Kind    FailureKind
	Message string
	cause   error
}

func (f *Failure) Error() string { return f.Message }
func (f *Failure) Unwrap() error { return f.cause }

// Classify は下層のエラーを利用者向けの失敗に変換します。
func Classify(err error) *Failure {
	switch {
	case errors.Is(err, ErrBusy):
		return &Failure{Kind: KindInputRejected, Message: "A request is already in progress. Wait for it to finish.", cause: err}
	case errors.Is(err, domain.ErrEmptyInput):
		return &Failure{Kind: KindInputRejected, Message: "Enter some text or attach a file before starting.", cause: err}
	case errors.Is(err, domain.ErrUnsupportedFile):
		return &Failure{Kind: KindUnsupportedInput, Message: "This file type is not supported. Use TXT, MD, JSON, DOCX, PDF or an image.", cause: err}
	case errors.Is(err, domain.ErrUnauthorized), adapters.IsAuthError(err):
		return &Failure{Kind: KindAuthorization, Message: "Your API key could not be validated. Re-authorize and try again.", cause: err}
	case errors.Is(err, domain.ErrNoImage):
		return &Failure{Kind: KindUpstreamEmpty, Message: "The model produced no image. Try rephrasing the prompt.", cause: err}
	default:
		return &Failure{Kind: KindUpstreamFailure, Message: "The request failed. Please try again.", cause: err}
	}
}
