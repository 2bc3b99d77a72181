package models

// RawTweet mirrors one stored document in the tweets collection. Every stored
// field is optional; pointers distinguish absent from zero so the normalizer
// can apply display defaults.
type RawTweet struct {
	ProfileImage *string `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	Name         *string `bson:"name,omitempty" json:"name,omitempty"`
	Username     *string `bson:"username,omitempty" json:"username,omitempty"`
	TweetContent *string `bson:"tweet_content,omitempty" json:"tweet_content,omitempty"`
	Likes        *int    `bson:"likes,omitempty" json:"likes,omitempty"`
	Replies      *int    `bson:"replies,omitempty" json:"replies,omitempty"`
	Retweets     *int    `bson:"retweets,omitempty" json:"retweets,omitempty"`
	Views        *int    `bson:"views,omitempty" json:"views,omitempty"`
	DatetimeAttr *string `bson:"datetime_attr,omitempty" json:"datetime_attr,omitempty"`

	// BatchNumber records which batch window this tweet was fetched under.
	// Request-scoped, never persisted.
	BatchNumber int `bson:"-" json:"batchNumber,omitempty"`
}

// AnnotatedTweet is the fully-populated view the dashboard renders. JSON keys
// match the UI contract, including the mixed casing.
type AnnotatedTweet struct {
	BatchNumber    int    `json:"batchNumber"`
	ProfilePicture string `json:"Profile_Picture"`
	Name           string `json:"Name"`
	User           string `json:"User"`
	Tweet          string `json:"Tweet"`
	Likes          int    `json:"Likes"`
	Replies        int    `json:"Replies"`
	Retweets       int    `json:"Retweets"`
	Views          int    `json:"Views"`
	DateTime       string `json:"DateTime"`
	DisplayTime    string `json:"Display_Time"`
	Sentiment      string `json:"Sentiment"`
}
