package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config holds all configuration for our application
type Config struct {
	Port                 string
	BindAddress          string
	Origin               string
	Environment          string
	LogLevel             string
	JWTSecret            string
	JWTExpirationMinutes int
	PasswordScheme       string
	Database             DatabaseConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	Seed     bool
	DSN      string
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.BindAddress, c.Port)
}

// IsDev reports whether the server runs in development mode.
func (c *Config) IsDev() bool {
	return c.Environment == "development"
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	seed, err := strconv.ParseBool(getEnv("DB_SEED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_SEED: %w", err)
	}

	dbConfig := DatabaseConfig{
		Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		Path:     getEnv("DB_PATH", "medical_clinic.sqlite3"),
		Host:     getEnv("DB_HOST", "localhost"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "clinic"),
		Seed:     seed,
	}

	switch dbConfig.Driver {
	case DriverSQLite:
		dbConfig.DSN = SQLiteDSN(dbConfig.Path)
	case DriverMySQL:
		dbConfig.Port = getEnv("DB_PORT", "3306")
		dbConfig.DSN = mysqlDSN(dbConfig)
	case DriverPostgres:
		dbConfig.Port = getEnv("DB_PORT", "5432")
		dbConfig.DSN = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbConfig.Host, dbConfig.Port, dbConfig.Username, dbConfig.Password, dbConfig.Name)
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: want sqlite, mysql or postgres", dbConfig.Driver)
	}

	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}

	scheme := strings.ToLower(getEnv("PASSWORD_SCHEME", "plain"))
	if scheme != "plain" && scheme != "bcrypt" {
		return nil, fmt.Errorf("invalid PASSWORD_SCHEME %q: want plain or bcrypt", scheme)
	}

	return &Config{
		Port:                 getEnv("PORT", "3001"),
		BindAddress:          getEnv("BIND_ADDRESS", "127.0.0.1"),
		Origin:               getEnv("ORIGIN", "http://localhost:4200"),
		Environment:          getEnv("APP_ENV", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		JWTSecret:            getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTExpirationMinutes: jwtExpMinutes,
		PasswordScheme:       scheme,
		Database:             dbConfig,
	}, nil
}

// SQLiteDSN builds a DSN for the embedded store with foreign keys switched on.
func SQLiteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)"
}

func mysqlDSN(db DatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.User = db.Username
	mc.Passwd = db.Password
	mc.Net = "tcp"
	mc.Addr = db.Host + ":" + db.Port
	mc.DBName = db.Name
	mc.ParseTime = true
	// UPDATE must report matched rows, not changed rows.
	mc.ClientFoundRows = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
