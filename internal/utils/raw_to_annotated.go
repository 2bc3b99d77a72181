package utils

import (
	"time"

	"github.com/dustin/go-humanize"

	"tweetlens/internal/models"
	"tweetlens/internal/sentiment"
)

const (
	defaultProfileImage = "/default-profile.png"
	defaultName         = "Unknown"
	defaultUsername     = "@unknown"
)

// RawToAnnotatedTweet fills every optional field with its display default,
// scores the content for sentiment and attaches a relative display time.
// Untagged tweets fall back to batch 1. Aside from reading the wall clock
// this is a pure mapping; it never fails on missing or malformed fields.
func RawToAnnotatedTweet(raw models.RawTweet) models.AnnotatedTweet {
	content := stringOr(raw.TweetContent, "")
	timestamp := stringOr(raw.DatetimeAttr, time.Now().Format(time.RFC3339))

	displayed := time.Now()
	if ts, ok := ParseTimestamp(timestamp); ok {
		displayed = ts
	}

	batchNumber := raw.BatchNumber
	if batchNumber == 0 {
		batchNumber = 1
	}

	_, label := sentiment.Classify(content)

	return models.AnnotatedTweet{
		BatchNumber:    batchNumber,
		ProfilePicture: stringOr(raw.ProfileImage, defaultProfileImage),
		Name:           stringOr(raw.Name, defaultName),
		User:           stringOr(raw.Username, defaultUsername),
		Tweet:          content,
		Likes:          intOr(raw.Likes),
		Replies:        intOr(raw.Replies),
		Retweets:       intOr(raw.Retweets),
		Views:          intOr(raw.Views),
		DateTime:       timestamp,
		DisplayTime:    humanize.Time(displayed),
		Sentiment:      label,
	}
}

// stringOr treats empty strings the same as absent ones; scraped documents
// contain both.
func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func intOr(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
