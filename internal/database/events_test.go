package database

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gogotex/gogotex/backend/blog-service/internal/config"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/logger"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/address"
	"go.mongodb.org/mongo-driver/mongo/description"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })
	return &buf
}

func changed(addr string, kind description.ServerKind) *event.ServerDescriptionChangedEvent {
	return &event.ServerDescriptionChangedEvent{
		Address:        address.Address(addr),
		NewDescription: description.Server{Kind: kind},
	}
}

func TestTracker_Lifecycle(t *testing.T) {
	buf := capture(t)
	msgs := config.NewMessages("Blog service", "5003")
	tr := NewTracker(msgs)
	mon := tr.ServerMonitor()

	mon.TopologyOpening(&event.TopologyOpeningEvent{})
	require.Contains(t, buf.String(), msgs.DBConnectionOpen)

	mon.ServerDescriptionChanged(changed("localhost:27017", description.Standalone))
	require.True(t, tr.Connected())
	require.Contains(t, buf.String(), msgs.DBConnected)
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreConnected))

	buf.Reset()
	mon.ServerDescriptionChanged(changed("localhost:27017", description.Unknown))
	require.False(t, tr.Connected())
	require.Contains(t, buf.String(), msgs.DBDisconnected)
	require.Equal(t, 0.0, testutil.ToFloat64(metrics.StoreConnected))

	buf.Reset()
	mon.ServerDescriptionChanged(changed("localhost:27017", description.Standalone))
	require.True(t, tr.Connected())
	require.Contains(t, buf.String(), msgs.DBReconnected)

	mon.TopologyClosed(&event.TopologyClosedEvent{})
	require.False(t, tr.Connected())
}

func TestTracker_ReplicaSetStaysConnectedWhileOneServerIsUp(t *testing.T) {
	capture(t)
	tr := NewTracker(config.NewMessages("Blog service", "5003"))
	mon := tr.ServerMonitor()

	mon.ServerDescriptionChanged(changed("a:27017", description.RSPrimary))
	mon.ServerDescriptionChanged(changed("b:27017", description.RSSecondary))
	mon.ServerDescriptionChanged(changed("a:27017", description.Unknown))
	require.True(t, tr.Connected())
}

func TestTracker_HeartbeatFailureIsLogged(t *testing.T) {
	buf := capture(t)
	msgs := config.NewMessages("Blog service", "5003")
	mon := NewTracker(msgs).ServerMonitor()

	mon.ServerHeartbeatFailed(&event.ServerHeartbeatFailedEvent{
		Duration:     time.Millisecond,
		Failure:      errors.New("connection refused"),
		ConnectionID: "localhost:27017[-1]",
	})
	require.Contains(t, buf.String(), "[ERROR]")
	require.Contains(t, buf.String(), msgs.DBError)
	require.Contains(t, buf.String(), "connection refused")
}

func TestClientOptions(t *testing.T) {
	cfg := config.MongoDBConfig{
		URI:            "mongodb://localhost:27017",
		PoolSize:       10,
		ConnectTimeout: 50 * time.Second,
		SocketTimeout:  50 * time.Second,
		Debug:          true,
	}
	opts := ClientOptions(cfg, NewTracker(config.Messages{}))
	require.Equal(t, uint64(10), *opts.MaxPoolSize)
	require.Equal(t, 50*time.Second, *opts.ConnectTimeout)
	require.Equal(t, 50*time.Second, *opts.SocketTimeout)
	require.NotNil(t, opts.ServerMonitor)
	require.NotNil(t, opts.Monitor)

	cfg.Debug = false
	require.Nil(t, ClientOptions(cfg, nil).Monitor)
}
