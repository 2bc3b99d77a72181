package models

// Batch describes one fixed-size window over the timestamp-descending tweet
// ordering. Batch 1 holds the most recent tweets; higher numbers reach
// progressively older ones. Batches are recomputed from the live collection
// on every request and never persisted.
type Batch struct {
	BatchNumber int    `json:"batchNumber"`
	Label       string `json:"label"`
}
