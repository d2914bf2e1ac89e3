package database

import (
	"fmt"
)

// DatabaseConfig carries everything InitDatabase needs to open a connection.
// Only the fields matching the selected driver are consulted: the host/port
// group for postgres, Path for sqlite.
type DatabaseConfig struct {
	// Driver selects the backing store: "postgres" or "sqlite".
	// An empty value falls back to sqlite.
	Driver string

	// PostgreSQL connection fields
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite database file; ":memory:" gives an ephemeral store
	Path string
}

// String renders the configuration for logging with the password masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN assembles the driver-specific data source name. Unknown drivers yield
// an empty string; InitDatabase rejects them before the DSN is ever used.
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	case "sqlite", "":
		return c.Path
	default:
		return ""
	}
}
