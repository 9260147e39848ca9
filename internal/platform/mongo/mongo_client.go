// Package mongo connects to the MongoDB document store.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"
)

// DefaultDatabase is used when neither the config nor the URI names a database.
const DefaultDatabase = "digital_mechanic_db"

// retryInterval is the wait between ping attempts.
var retryInterval = 3 * time.Second

type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// DatabaseName resolves the database to use: explicit name, then the URI path, then DefaultDatabase.
func DatabaseName(uri, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if cs, err := connstring.Parse(uri); err == nil && cs.Database != "" {
		return cs.Database
	}
	return DefaultDatabase
}

// Connect opens a client and pings the primary until it answers or the
// connect timeout elapses.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	deadline := time.Now().Add(timeout)
	for {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = client.Ping(pingCtx, readpref.Primary())
		cancel()
		if err == nil {
			break
		}
		if time.Now().After(deadline) || ctx.Err() != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("mongo ping failed after %s: %w", timeout, err)
		}
		slog.Warn("MongoDB ping failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}

	name := DatabaseName(cfg.URI, cfg.Database)
	slog.Info("MongoDB connection successful", "database", name)
	return client, client.Database(name), nil
}
