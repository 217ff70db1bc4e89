package adapters

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shouni/gemini-philo-kit/pkg/domain"
	"github.com/shouni/gemini-philo-kit/pkg/imgutil"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

const (
	// attachmentSizeLimit を超える画像添付はJPEGへ再圧縮します。
	attachmentSizeLimit = 4 << 20
	jpegQuality         = 80
	cacheKeyAttachment  = "attachment:"
)

// AttachmentCacher は取得済み添付データのキャッシュ操作を抽象化するインターフェースです。
type AttachmentCacher interface {
	Get(key string) (any, bool)
	Set(key string, value any, d time.Duration)
}

// AttachmentCore はローカルバイト列やリモートURLから添付を準備するコンポーネントです。
type AttachmentCore struct {
	httpClient httpkit.ClientInterface
	reader     remoteio.InputReader
	cache      AttachmentCacher
	expiration time.Duration
}

// NewAttachmentCore は依存関係を注入して AttachmentCore を初期化します。
func NewAttachmentCore(httpClient httpkit.ClientInterface, reader remoteio.InputReader, cache AttachmentCacher, cacheTTL time.Duration) (*AttachmentCore, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	// cache は nil を許容（キャッシュなし動作）

	return &AttachmentCore{
		httpClient: httpClient,
		reader:     reader,
		cache:      cache,
		expiration: cacheTTL,
	}, nil
}

// FromBytes はバイト列から添付を作ります。MIMEタイプは内容から推定し、
// hint が与えられていればそれを優先します。大きな画像はJPEGへ再圧縮します。
func FromBytes(data []byte, hint string) (*domain.Attachment, error) {
	if len(data) == 0 {
		return nil, domain.ErrEmptyInput
	}

	mimeType := hint
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	if strings.HasPrefix(mimeType, "image/") {
		shrunk := imgutil.ShrinkIfLarger(data, attachmentSizeLimit, jpegQuality)
		if len(shrunk) != len(data) {
			slog.Info("添付画像を再圧縮しました", "before", len(data), "after", len(shrunk))
			data = shrunk
			mimeType = http.DetectContentType(data)
		}
	}

	return &domain.Attachment{Data: data, MIMEType: mimeType}, nil
}

// FetchAttachment はリモートURL（https または gs://）から添付を取得します。
// 取得結果はキャッシュされ、同一URLの再アップロードを避けます。
func (c *AttachmentCore) FetchAttachment(ctx context.Context, rawURL string) (*domain.Attachment, error) {
	if c.cache != nil {
		if val, ok := c.cache.Get(cacheKeyAttachment + rawURL); ok {
			if att, ok := val.(*domain.Attachment); ok {
				return att, nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "url", rawURL, "type", fmt.Sprintf("%T", val))
		}
	}

	data, err := c.fetchData(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	att, err := FromBytes(data, "")
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(cacheKeyAttachment+rawURL, att, c.expiration)
	}
	return att, nil
}

func (c *AttachmentCore) fetchData(ctx context.Context, rawURL string) ([]byte, error) {
	if strings.HasPrefix(rawURL, "gs://") {
		rc, err := c.reader.Open(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if safe, err := isSafeURL(rawURL); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}
	return c.httpClient.FetchBytes(ctx, rawURL)
}

// isSafeURL は SSRF 対策として URL を検証します。
// 名前解決されたすべての IP アドレスに対してプライベート IP チェックを行います。
func isSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP

	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolvedIPs, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("名前解決失敗: %w", err)
		}
		ips = resolvedIPs
	}

	if len(ips) == 0 {
		return false, fmt.Errorf("IPが見つかりません")
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
