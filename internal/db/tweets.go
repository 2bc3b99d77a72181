package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tweetlens/internal/models"
)

const (
	DatabaseName   = "tweet_db"
	CollectionName = "tweets"

	timestampField = "datetime_attr"
)

// TweetRepository reads the tweets collection. It satisfies batching.Store.
type TweetRepository struct {
	coll *mongo.Collection
}

func NewTweetRepository(client *mongo.Client) *TweetRepository {
	return &TweetRepository{
		coll: client.Database(DatabaseName).Collection(CollectionName),
	}
}

// CountAll returns the total number of stored tweets.
func (r *TweetRepository) CountAll(ctx context.Context) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("[TweetRepository] failed to count tweets: %w", err)
	}
	return total, nil
}

// QueryWindow returns up to limit tweets sorted by timestamp descending,
// starting at offset skip. With timestampOnly set only datetime_attr is
// fetched, which is all the batch catalog needs.
func (r *TweetRepository) QueryWindow(ctx context.Context, skip, limit int64, timestampOnly bool) ([]models.RawTweet, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: timestampField, Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	if timestampOnly {
		opts.SetProjection(bson.D{{Key: timestampField, Value: 1}})
	}

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("[TweetRepository] window query failed (skip=%d limit=%d): %w", skip, limit, err)
	}
	defer cursor.Close(ctx)

	var tweets []models.RawTweet
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, fmt.Errorf("[TweetRepository] failed to decode window: %w", err)
	}
	return tweets, nil
}
