package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string
}

type Config struct {
	Database DatabaseConfig
	// Port of the status listener; empty disables it.
	Port string
	Log  struct {
		Level  string
		Format string
		File   string
	}
}

// LoadConfig reads the given env files (".env" when none are given) and then the
// process environment. Missing env files are not an error.
func LoadConfig(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	cfg.Database.Driver = getEnv("DB_DRIVER", DriverMySQL)
	cfg.Database.Host = getEnv("DB_HOST", "127.0.0.1")
	cfg.Database.User = getEnv("DB_USER", "root")
	cfg.Database.Password = getEnv("DB_PASSWORD", os.Getenv("MYSQL_PASSWORD"))
	cfg.Database.Name = getEnv("DB_NAME", "employees")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.Path = getEnv("DB_PATH", "employees.db")

	defaultPort := 3306
	if cfg.Database.Driver == DriverPostgres {
		defaultPort = 5432
	}
	cfg.Database.Port = defaultPort
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return nil, fmt.Errorf("invalid DB_PORT %q", v)
		}
		cfg.Database.Port = port
	}

	switch cfg.Database.Driver {
	case DriverMySQL, DriverPostgres:
		if cfg.Database.Password == "" {
			return nil, ErrNoPassword{}
		}
	case DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	cfg.Port = getEnv("PORT", "8080")
	if cfg.Port == "off" {
		cfg.Port = ""
	}

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")
	cfg.Log.File = getEnv("LOG_FILE", "employee-tracker.log")

	return cfg, nil
}

// GetDSN returns the data source name for the configured driver.
func (c *DatabaseConfig) GetDSN() string {
	switch c.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	case DriverSQLite:
		return SQLiteDSN(c.Path)
	default:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
		mc.DBName = c.Name
		return mc.FormatDSN()
	}
}

// SQLiteDSN turns foreign key enforcement on, which go-sqlite3 leaves off by default.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

type ErrNoPassword struct{}

func (e ErrNoPassword) Error() string {
	return "DB_PASSWORD (or MYSQL_PASSWORD) is not set in the environment"
}
