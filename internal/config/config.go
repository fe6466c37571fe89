package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	PostgresHost string
	PostgresPort string
	PostgresDB   string
	PostgresUser string
	PostgresPass string
	PostgresSSL  string

	RedisAddr string
	RedisDB   int

	ReportCacheTTLSecs int

	ExportDir     string
	ExportBaseURL string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:      getenv("APP_PORT", "8080"),
		PostgresHost: getenv("POSTGRES_HOST", "postgres"),
		PostgresPort: getenv("POSTGRES_PORT", "5432"),
		PostgresDB:   getenv("POSTGRES_DB", "kastle"),
		PostgresUser: getenv("POSTGRES_USER", "kastle"),
		PostgresPass: getenv("POSTGRES_PASS", "kastle"),
		PostgresSSL:  getenv("POSTGRES_SSLMODE", "disable"),

		RedisAddr:          getenv("REDIS_ADDR", "redis:6379"),
		ReportCacheTTLSecs: 300,

		ExportDir:     getenv("EXPORT_DIR", "exports"),
		ExportBaseURL: getenv("EXPORT_BASE_URL", "/downloads"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("REPORT_CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ReportCacheTTLSecs = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDB == "" || c.PostgresUser == "" {
		return errors.New("missing Postgres config (POSTGRES_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.PostgresPort); err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT %q: %w", c.PostgresPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.ExportDir == "" {
		return errors.New("missing EXPORT_DIR")
	}
	return nil
}

func (c *Config) PostgresDSN() string {
	// TimeZone pinned to UTC so DPD and vintage month boundaries do not drift per host
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPass, c.PostgresDB, c.PostgresSSL)
}
