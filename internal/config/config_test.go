package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	t.Setenv("MONGODB_DATABASE", "blog_test")
	t.Setenv("APPLICATION_NAME", "Blog test")
	t.Setenv("SERVER_PORT", "6000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "mongodb://localhost:27017/testdb", cfg.MongoDB.URI)
	require.Equal(t, "blog_test", cfg.MongoDB.Database)
	require.Equal(t, BlogsCollection, cfg.MongoDB.Collection)
	require.Equal(t, "Blog test", cfg.App.Name)
	require.Equal(t, "6000", cfg.Server.Port)
	require.Equal(t, "0.0.0.0:6000", cfg.Addr())
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("APPLICATION_NAME", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Empty(t, cfg.MongoDB.URI)
	require.Equal(t, "5003", cfg.Server.Port)
	require.Equal(t, uint64(10), cfg.MongoDB.PoolSize)
	require.Equal(t, 50*time.Second, cfg.MongoDB.ConnectTimeout)
	require.Equal(t, 50*time.Second, cfg.MongoDB.SocketTimeout)
	require.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	require.False(t, cfg.Server.StrictStatus)
	require.False(t, cfg.MongoDB.Debug)
}

func TestLoadConfig_CompatibilityKeys(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("PORT", "7001")
	t.Setenv("MONGO_URI", "mongodb://legacy:27017")
	t.Setenv("HTTP_STRICT_STATUS", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "7001", cfg.Server.Port)
	require.Equal(t, "mongodb://legacy:27017", cfg.MongoDB.URI)
	require.True(t, cfg.Server.StrictStatus)
}

func TestMessages(t *testing.T) {
	m := NewMessages("Blog test", "6000")
	require.Equal(t, "Welcome to Blog test", m.Welcome)
	require.Equal(t, "Not found", m.NotFound)
	require.Equal(t, "Success", m.Success)
	require.Contains(t, m.ApplicationRunning, "6000")
}
