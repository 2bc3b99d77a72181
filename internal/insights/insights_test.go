package insights

import (
	"testing"

	"tweetlens/internal/models"
	"tweetlens/internal/sentiment"
)

func TestBuildSummaryEmptySelection(t *testing.T) {
	summary := BuildSummary(nil)

	if summary.TotalTweets != 0 {
		t.Errorf("expected 0 tweets, got %d", summary.TotalTweets)
	}
	if summary.TopTweet != nil {
		t.Error("expected no top tweet for empty selection")
	}
}

func TestBuildSummaryCountsAndTotals(t *testing.T) {
	tweets := []models.AnnotatedTweet{
		{Tweet: "great stuff", Sentiment: sentiment.LabelPositive, Likes: 10, Replies: 2, Retweets: 1, Views: 500},
		{Tweet: "awful", Sentiment: sentiment.LabelNegative, Likes: 1, Replies: 0, Retweets: 0, Views: 40},
		{Tweet: "just a tweet", Sentiment: sentiment.LabelNeutral, Likes: 3, Replies: 7, Retweets: 9, Views: 60},
	}

	summary := BuildSummary(tweets)

	if summary.TotalTweets != 3 {
		t.Errorf("expected 3 tweets, got %d", summary.TotalTweets)
	}
	if summary.PositiveCount != 1 || summary.NegativeCount != 1 || summary.NeutralCount != 1 {
		t.Errorf("unexpected sentiment counts: %+v", summary)
	}
	if summary.TotalLikes != 14 || summary.TotalReplies != 9 || summary.TotalRetweets != 10 || summary.TotalViews != 600 {
		t.Errorf("unexpected engagement totals: %+v", summary)
	}
	if summary.TopTweet == nil || summary.TopTweet.Tweet != "just a tweet" {
		t.Errorf("expected the 19-engagement tweet on top, got %+v", summary.TopTweet)
	}
}

func TestBuildSummaryUnlabeledCountsAsNeutral(t *testing.T) {
	summary := BuildSummary([]models.AnnotatedTweet{{Tweet: "no label attached"}})

	if summary.NeutralCount != 1 {
		t.Errorf("expected unlabeled tweet to count as neutral, got %+v", summary)
	}
}
