package utils

// Ptr は値へのポインタを返します。生成設定の組み立てに使います。
func Ptr[T any](v T) *T {
	return &v
}

