package insights

import (
	"tweetlens/internal/models"
	"tweetlens/internal/sentiment"
)

// Summary aggregates the currently displayed tweet selection for the
// dashboard sidebar. It is recomputed per request, never cached.
type Summary struct {
	TotalTweets   int `json:"totalTweets"`
	PositiveCount int `json:"positiveCount"`
	NeutralCount  int `json:"neutralCount"`
	NegativeCount int `json:"negativeCount"`

	TotalLikes    int `json:"totalLikes"`
	TotalReplies  int `json:"totalReplies"`
	TotalRetweets int `json:"totalRetweets"`
	TotalViews    int `json:"totalViews"`

	TopTweet *models.AnnotatedTweet `json:"topTweet,omitempty"`
}

// BuildSummary tallies sentiment labels and engagement counters over the
// selection. The top tweet is the one with the highest combined
// likes+replies+retweets; ties keep the earlier tweet.
func BuildSummary(tweets []models.AnnotatedTweet) Summary {
	summary := Summary{TotalTweets: len(tweets)}

	topEngagement := -1
	for i := range tweets {
		tweet := tweets[i]

		switch tweet.Sentiment {
		case sentiment.LabelPositive:
			summary.PositiveCount++
		case sentiment.LabelNegative:
			summary.NegativeCount++
		default:
			summary.NeutralCount++
		}

		summary.TotalLikes += tweet.Likes
		summary.TotalReplies += tweet.Replies
		summary.TotalRetweets += tweet.Retweets
		summary.TotalViews += tweet.Views

		engagement := tweet.Likes + tweet.Replies + tweet.Retweets
		if engagement > topEngagement {
			topEngagement = engagement
			summary.TopTweet = &tweets[i]
		}
	}

	return summary
}
