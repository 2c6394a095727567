package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gogotex/gogotex/backend/blog-service/internal/config"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/logger"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClientOptions builds the driver options for cfg. A non-nil tracker is
// installed as the server monitor; Debug adds a command logger.
func ClientOptions(cfg config.MongoDBConfig, tracker *Tracker) *options.ClientOptions {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.PoolSize > 0 {
		opts.SetMaxPoolSize(cfg.PoolSize)
	}
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.SocketTimeout > 0 {
		opts.SetSocketTimeout(cfg.SocketTimeout)
	}
	if tracker != nil {
		opts.SetServerMonitor(tracker.ServerMonitor())
	}
	if cfg.Debug {
		opts.SetMonitor(CommandLogger())
	}
	return opts
}

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, cfg config.MongoDBConfig, tracker *Tracker) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, ClientOptions(cfg, tracker))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// ConnectWithRetry retries ConnectMongo with exponential backoff to tolerate
// startup races with the database container.
func ConnectWithRetry(ctx context.Context, cfg config.MongoDBConfig, tracker *Tracker, attempts int, backoff time.Duration) (*mongo.Client, error) {
	var errConn error
	for attempt := 1; attempt <= attempts; attempt++ {
		var client *mongo.Client
		client, errConn = ConnectMongo(ctx, cfg, tracker)
		if errConn == nil {
			return client, nil
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, attempts, errConn)
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}
	return nil, fmt.Errorf("after %d attempts: %w", attempts, errConn)
}

// Disconnect closes the client and reports the closed connection.
func Disconnect(ctx context.Context, client *mongo.Client, msgs config.Messages) error {
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	logger.Infof("%s", msgs.DBConnectionClosed)
	return nil
}

// CommandLogger logs every command at debug level.
func CommandLogger() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(_ context.Context, e *event.CommandStartedEvent) {
			logger.Debugf("mongo %s.%s #%d %s", e.DatabaseName, e.CommandName, e.RequestID, e.Command)
		},
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			logger.Debugf("mongo %s #%d ok in %s", e.CommandName, e.RequestID, e.Duration)
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			logger.Debugf("mongo %s #%d failed in %s: %s", e.CommandName, e.RequestID, e.Duration, e.Failure)
		},
	}
}
