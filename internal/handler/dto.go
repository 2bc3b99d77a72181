package handler

import (
	"tweetlens/internal/insights"
	"tweetlens/internal/models"
)

type BatchesResponse struct {
	Batches []models.Batch `json:"batches"`
}

type TweetsResponse struct {
	Tweets          []models.AnnotatedTweet `json:"tweets"`
	Insights        insights.Summary        `json:"insights"`
	SelectedBatches []int                   `json:"selectedBatches"`
}
