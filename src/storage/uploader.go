package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/agentverse/agentverse/src/concurrent"
	"github.com/agentverse/agentverse/src/notify"
)

// maxParallelUploads bounds concurrent store calls for one batch.
const maxParallelUploads = 4

// UploadError reports one failed asset within a batch.
type UploadError struct {
	Name string
	Err  error
}

func (e *UploadError) Error() string { return fmt.Sprintf("upload %s: %v", e.Name, e.Err) }
func (e *UploadError) Unwrap() error { return e.Err }

// Uploader pushes a batch of local assets to the blob store. Per-asset
// failures are reported and skipped; the batch never aborts.
type Uploader struct {
	Store    BlobStore
	Notifier notify.Notifier
	MaxBytes int64 // cap to avoid huge uploads (default: 10MiB)

	now func() time.Time
}

func NewUploader(store BlobStore, notifier notify.Notifier) *Uploader {
	return &Uploader{
		Store:    store,
		Notifier: notifier,
		MaxBytes: 10 << 20,
		now:      time.Now,
	}
}

// UploadAll uploads each asset under prefix + uniqueness token + name and
// returns the public URLs of the assets that succeeded, in input order.
// The result is never longer than the input and may be shorter.
func (u *Uploader) UploadAll(ctx context.Context, prefix string, assets []Asset) []string {
	if len(assets) == 0 {
		return nil
	}
	u.notify(func(n notify.Notifier) { n.Info("Uploading images...") })

	// Paths are stamped before the parallel phase so the uniqueness
	// token follows selection order.
	paths := make([]string, len(assets))
	indexes := make([]int, len(assets))
	for i, asset := range assets {
		paths[i] = fmt.Sprintf("%s%d-%s", prefix, u.now().UnixMilli(), asset.Name)
		indexes[i] = i
	}

	results, errs := concurrent.Map(ctx, indexes, func(ctx context.Context, i int) (string, error) {
		asset := assets[i]
		if u.MaxBytes > 0 && int64(len(asset.Data)) > u.MaxBytes {
			return "", &UploadError{Name: asset.Name, Err: fmt.Errorf("exceeds %d bytes", u.MaxBytes)}
		}
		url, err := u.Store.Upload(ctx, paths[i], asset.Data, true)
		if err != nil {
			return "", &UploadError{Name: asset.Name, Err: err}
		}
		return url, nil
	}, maxParallelUploads)

	urls := make([]string, 0, len(assets))
	for i, asset := range assets {
		if errs[i] != nil {
			u.notify(func(n notify.Notifier) { n.Error("Failed to upload " + asset.Name) })
			continue
		}
		urls = append(urls, results[i])
	}
	return urls
}

func (u *Uploader) notify(fn func(notify.Notifier)) {
	if u.Notifier != nil {
		fn(u.Notifier)
	}
}
