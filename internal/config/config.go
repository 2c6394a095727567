package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	App     AppConfig
	Server  ServerConfig
	MongoDB MongoDBConfig
	Log     LogConfig
}

type AppConfig struct {
	Name string
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// StrictStatus makes not-found answers use the HTTP status embedded in the
	// envelope instead of 200.
	StrictStatus bool
}

type MongoDBConfig struct {
	URI            string
	Database       string
	Collection     string
	Timeout        time.Duration
	PoolSize       uint64
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
	Debug          bool
}

type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APPLICATION_NAME", "Blog service")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("HTTP_STRICT_STATUS", false)
	v.SetDefault("MONGODB_DATABASE", "blog_service")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("MONGODB_POOL_SIZE", 10)
	v.SetDefault("MONGODB_CONNECT_TIMEOUT_MS", 50000)
	v.SetDefault("MONGODB_SOCKET_TIMEOUT_MS", 50000)
	v.SetDefault("MONGODB_DEBUG", false)
	v.SetDefault("LOG_LEVEL", "info")

	// PORT and MONGO_URI are accepted for compatibility with older deployments.
	if err := v.BindEnv("server.port", "SERVER_PORT", "PORT"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("mongodb.uri", "MONGODB_URI", "MONGO_URI"); err != nil {
		return nil, err
	}
	v.SetDefault("server.port", "5003")

	poolSize := v.GetInt("MONGODB_POOL_SIZE")
	if poolSize < 0 {
		poolSize = 0
	}

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("APPLICATION_NAME"),
		},
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			Host:         v.GetString("SERVER_HOST"),
			Environment:  v.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			StrictStatus: v.GetBool("HTTP_STRICT_STATUS"),
		},
		MongoDB: MongoDBConfig{
			URI:            v.GetString("mongodb.uri"),
			Database:       v.GetString("MONGODB_DATABASE"),
			Collection:     BlogsCollection,
			Timeout:        time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
			PoolSize:       uint64(poolSize),
			ConnectTimeout: time.Duration(v.GetInt("MONGODB_CONNECT_TIMEOUT_MS")) * time.Millisecond,
			SocketTimeout:  time.Duration(v.GetInt("MONGODB_SOCKET_TIMEOUT_MS")) * time.Millisecond,
			Debug:          v.GetBool("MONGODB_DEBUG"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
