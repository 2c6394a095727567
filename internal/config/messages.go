package config

import "fmt"

// Messages are the user-facing strings returned in envelopes and printed at startup.
type Messages struct {
	Welcome            string
	Success            string
	NotFound           string
	ApplicationRunning string
	DBConnected        string
	DBError            string
	DBConnectionOpen   string
	DBReconnected      string
	DBDisconnected     string
	DBConnectionClosed string
	DBConnectionFailed string
}

// NewMessages builds the message set for the given application name and port.
func NewMessages(appName, port string) Messages {
	return Messages{
		Welcome:            fmt.Sprintf("Welcome to %s", appName),
		Success:            "Success",
		NotFound:           "Not found",
		ApplicationRunning: fmt.Sprintf("Server is up and running on port: %s", port),
		DBConnected:        "Database connected successfully",
		DBError:            "Database connection failure",
		DBConnectionOpen:   "Database connection opened",
		DBReconnected:      "Database reconnected",
		DBDisconnected:     "Database disconnected",
		DBConnectionClosed: "Database connection closed",
		DBConnectionFailed: "Failed to connect to database",
	}
}

// Messages returns the message set for this configuration.
func (c *Config) Messages() Messages {
	return NewMessages(c.App.Name, c.Server.Port)
}
