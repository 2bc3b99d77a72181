package batching

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"tweetlens/internal/models"
	"tweetlens/internal/utils"
)

const labelTimeFormat = "2006-01-02 15:04"

// PlanBatches computes the full batch catalog from the live tweet count: one
// batch per batchSize-wide window of the timestamp-descending ordering, with
// a label built from the first and last timestamps of each window. Windows
// are fetched concurrently, one slot per batch, and assembled back in
// ascending batch-number order. A window that fails to fetch is logged and
// skipped, leaving a numbering gap rather than aborting the catalog. A count
// failure is returned to the caller, whose policy decides how to degrade.
func PlanBatches(ctx context.Context, store Store, batchSize int64) ([]models.Batch, error) {
	total, err := store.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("[BatchPlanner] failed to count tweets: %w", err)
	}
	if total == 0 {
		return []models.Batch{}, nil
	}

	totalBatches := (total + batchSize - 1) / batchSize
	slots := make([]*models.Batch, totalBatches)

	var wg sync.WaitGroup
	for i := int64(1); i <= totalBatches; i++ {
		wg.Add(1)
		go func(batchNumber int64) {
			defer wg.Done()

			skip := (batchNumber - 1) * batchSize
			window, err := store.QueryWindow(ctx, skip, batchSize, true)
			if err != nil {
				slog.Warn("[BatchPlanner] Failed to fetch batch window, skipping batch",
					slog.Int64("batch_number", batchNumber),
					slog.String("error", err.Error()))
				return
			}
			if len(window) == 0 {
				return
			}

			first := windowTimestamp(window[0])
			last := windowTimestamp(window[len(window)-1])
			slots[batchNumber-1] = &models.Batch{
				BatchNumber: int(batchNumber),
				Label:       fmt.Sprintf("Batch %d: %s - %s", batchNumber, first, last),
			}
		}(i)
	}
	wg.Wait()

	batches := make([]models.Batch, 0, totalBatches)
	for _, batch := range slots {
		if batch != nil {
			batches = append(batches, *batch)
		}
	}
	return batches, nil
}

// windowTimestamp formats a window-edge timestamp for the batch label,
// falling back to the raw stored string when it will not parse.
func windowTimestamp(tweet models.RawTweet) string {
	if tweet.DatetimeAttr == nil {
		return ""
	}
	if ts, ok := utils.ParseTimestamp(*tweet.DatetimeAttr); ok {
		return ts.Format(labelTimeFormat)
	}
	return *tweet.DatetimeAttr
}
