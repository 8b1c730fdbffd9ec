package port

import (
	"context"

	"github.com/bnema/stayup/internal/domain/entity"
)

// DownloadListener is notified of download activity. No payload is promised:
// listeners re-query with Search.
type DownloadListener func(ctx context.Context)

// DownloadActivity observes downloads. Only usable while the downloads
// permission is granted.
type DownloadActivity interface {
	Search(ctx context.Context, state entity.DownloadState) ([]entity.DownloadItem, error)
	OnCreated(fn DownloadListener) (unsubscribe func())
	OnChanged(fn DownloadListener) (unsubscribe func())
}
