package clients

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoConnectTimeout = 10 * time.Second

var (
	mongoInstance *mongo.Client
	mongoOnce     sync.Once
)

// GetMongoClient returns the process-wide MongoDB client, connecting and
// pinging on first use. The connection pool is shared across all requests
// for the lifetime of the process; callers never close it.
func GetMongoClient() *mongo.Client {
	mongoOnce.Do(func() {
		uri := os.Getenv("MONGODB_URI")
		if uri == "" {
			slog.Error("[MongoClient] Missing MONGODB_URI in environment variables")
			panic("[MongoClient] Missing MONGODB_URI in environment variables")
		}

		ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			panic(fmt.Errorf("[MongoClient] failed to connect to MongoDB: %w", err))
		}

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Errorf("[MongoClient] failed to ping MongoDB: %w", err))
		}

		slog.Info("[MongoClient] Successfully connected to MongoDB")
		mongoInstance = client
	})
	return mongoInstance
}
