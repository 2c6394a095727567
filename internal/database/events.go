package database

import (
	"sync"

	"github.com/gogotex/gogotex/backend/blog-service/internal/config"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/logger"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/metrics"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/description"
)

// Tracker follows the driver's server monitoring events and reports the
// store's connection lifecycle: connected, disconnected, reconnected.
// The store counts as connected while at least one server is known.
type Tracker struct {
	msgs config.Messages

	mu        sync.Mutex
	servers   map[string]bool
	connected bool
	seen      bool
}

func NewTracker(msgs config.Messages) *Tracker {
	return &Tracker{msgs: msgs, servers: make(map[string]bool)}
}

// ServerMonitor returns the monitor to install on the client options.
func (t *Tracker) ServerMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		TopologyOpening: func(*event.TopologyOpeningEvent) {
			logger.Infof("%s", t.msgs.DBConnectionOpen)
		},
		ServerDescriptionChanged: func(e *event.ServerDescriptionChangedEvent) {
			t.serverChanged(e.Address.String(), e.NewDescription.Kind != description.Unknown)
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			logger.Errorf("%s: %s: %v", t.msgs.DBError, e.ConnectionID, e.Failure)
		},
		TopologyClosed: func(*event.TopologyClosedEvent) {
			t.closed()
		},
	}
}

// Connected reports whether any server is currently reachable.
func (t *Tracker) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connected
}

func (t *Tracker) serverChanged(addr string, up bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if up {
		t.servers[addr] = true
	} else {
		delete(t.servers, addr)
	}
	now := len(t.servers) > 0
	if now == t.connected {
		return
	}
	t.connected = now
	switch {
	case now && t.seen:
		logger.Infof("%s", t.msgs.DBReconnected)
		metrics.StoreConnected.Set(1)
	case now:
		t.seen = true
		logger.Infof("%s", t.msgs.DBConnected)
		metrics.StoreConnected.Set(1)
	default:
		logger.Warnf("%s", t.msgs.DBDisconnected)
		metrics.StoreConnected.Set(0)
	}
}

func (t *Tracker) closed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.servers = make(map[string]bool)
	t.connected = false
	metrics.StoreConnected.Set(0)
}
