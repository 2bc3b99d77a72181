package batching

import (
	"context"

	"tweetlens/internal/models"
)

// Store is the slice of the tweet repository the batching pipeline needs.
// QueryWindow must apply skip/limit over a stable timestamp-descending sort
// and return a caller-owned slice. With timestampOnly set the store may fetch
// only datetime_attr; that is an optimization, not a correctness requirement.
type Store interface {
	CountAll(ctx context.Context) (int64, error)
	QueryWindow(ctx context.Context, skip, limit int64, timestampOnly bool) ([]models.RawTweet, error)
}

// DefaultBatchSize is the fixed page size the dashboard paginates with.
const DefaultBatchSize = 100
