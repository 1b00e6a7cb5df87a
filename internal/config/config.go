package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver       string
	DbHOST       string
	DbPORT       string
	DbUSER       string
	DbPASSWORD   string
	DbNAME       string
	DbSSLMODE    string
	DbPATH       string
	MaxOpenConns int
	MaxIdleConns int
}

// AdminSeed describes the admin account created at startup when it does not exist yet.
type AdminSeed struct {
	Username string
	Email    string
	Password string
}

type Config struct {
	ServerPort     int
	Env            string
	CORSOrigin     string
	DB             DB
	JWTSecretKey   string
	TokenDuration  time.Duration
	Admin          AdminSeed
	UseRealContent bool
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// ParseDuration accepts Go durations ("36h") and whole days ("7d").
func ParseDuration(value string, fallback time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return fallback
		}
		return time.Duration(n) * 24 * time.Hour
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		Driver:       strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DbHOST:       getEnv("DB_HOST", "localhost"),
		DbPORT:       getEnv("DB_PORT", "5432"),
		DbUSER:       getEnv("DB_USER", "postgres"),
		DbPASSWORD:   getEnv("DB_PASSWORD", "password"),
		DbNAME:       getEnv("DB_NAME", "caritas"),
		DbSSLMODE:    getEnv("DB_SSLMODE", "disable"),
		DbPATH:       getEnv("DATABASE_PATH", "caritas.sqlite"),
		MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:    getEnvAsInt("SERVER_PORT", 8080),
		Env:           getEnv("APP_ENV", "production"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "*"),
		DB:            LoadDB(),
		JWTSecretKey:  getEnv("JWT_SECRET_KEY", ""),
		TokenDuration: ParseDuration(getEnv("JWT_EXPIRES_IN", "7d"), 7*24*time.Hour),
		Admin: AdminSeed{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Email:    getEnv("ADMIN_EMAIL", "admin@caritasmutare.org"),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		UseRealContent: getEnvBool("CONTENT_USE_REAL_DATA", true),
	}
}

// Validate reports configuration problems that must stop the process.
func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY is not set")
	}
	if c.DB.Driver != DriverPostgres && c.DB.Driver != DriverSQLite {
		return errors.New("DB_DRIVER must be postgres or sqlite")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
