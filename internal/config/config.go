package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"
)

// Slot drivers.
const (
	DriverSQLite = "sqlite"
	DriverS3     = "s3"
	DriverMemory = "memory"
)

// S3 configures the s3 slot driver.
type S3 struct {
	Bucket          string
	Region          string
	Endpoint        string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
	PathStyle       bool
}

// Config holds runtime settings shared by the CLI and the HTTP server.
type Config struct {
	DatabasePath string
	SlotDriver   string
	SnapshotKey  string

	PageSize          int
	ImageMaxBytes     int64
	ImageAllowedTypes []string

	QueryCacheSize int
	QueryCacheTTL  time.Duration

	HTTPAddr        string
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string

	S3 S3
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "lostfound.db"
	c.SlotDriver = DriverSQLite
	c.SnapshotKey = "lostfound.items.v1"
	c.PageSize = 9
	c.ImageMaxBytes = 0
	c.ImageAllowedTypes = nil
	c.QueryCacheSize = 128
	c.QueryCacheTTL = time.Minute
	c.HTTPAddr = ":8080"
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.S3 = S3{Region: "us-east-1", Prefix: "lostfound/"}
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains([]string{DriverSQLite, DriverS3, DriverMemory}, c.SlotDriver) {
		errs = append(errs, fmt.Errorf("unknown slot driver %q", c.SlotDriver))
	}
	if c.SlotDriver == DriverSQLite && c.DatabasePath == "" {
		errs = append(errs, errors.New("database path required for sqlite driver"))
	}
	if c.SlotDriver == DriverS3 && c.S3.Bucket == "" {
		errs = append(errs, errors.New("s3 bucket required for s3 driver"))
	}
	if c.SnapshotKey == "" {
		errs = append(errs, errors.New("snapshot key must not be empty"))
	}
	if c.PageSize < 1 {
		errs = append(errs, fmt.Errorf("page size must be positive, got %d", c.PageSize))
	}
	if c.ImageMaxBytes < 0 {
		errs = append(errs, fmt.Errorf("image max bytes must not be negative, got %d", c.ImageMaxBytes))
	}
	return errors.Join(errs...)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags. Later sources take precedence
// over earlier ones. Malformed input panics.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
