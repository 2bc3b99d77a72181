package batching

import (
	"context"
	"fmt"
	"sync"

	"tweetlens/internal/models"
)

// ResolveBatches fetches the window behind every requested batch number and
// tags each tweet with the batch it was fetched under. The caller-supplied
// order is preserved in the concatenated result and duplicates are not
// deduplicated; windows are fetched concurrently into per-request slots, so
// completion order never leaks into the output. Any window failure fails the
// whole resolution; the caller's policy decides how to degrade.
func ResolveBatches(ctx context.Context, store Store, batchNumbers []int, batchSize int64) ([]models.RawTweet, error) {
	windows := make([][]models.RawTweet, len(batchNumbers))
	errs := make([]error, len(batchNumbers))

	var wg sync.WaitGroup
	for i, batchNumber := range batchNumbers {
		wg.Add(1)
		go func(slot, batchNumber int) {
			defer wg.Done()

			skip := int64(batchNumber-1) * batchSize
			window, err := store.QueryWindow(ctx, skip, batchSize, false)
			if err != nil {
				errs[slot] = fmt.Errorf("[BatchResolver] failed to fetch batch %d: %w", batchNumber, err)
				return
			}

			for j := range window {
				window[j].BatchNumber = batchNumber
			}
			windows[slot] = window
		}(i, batchNumber)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var tweets []models.RawTweet
	for _, window := range windows {
		tweets = append(tweets, window...)
	}
	return tweets, nil
}
