package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lostfound/internal/flagx"
	"github.com/dmitrijs2005/lostfound/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the current value alone.
type JsonConfig struct {
	DatabasePath      string          `json:"database_path"`
	SlotDriver        string          `json:"slot_driver"`
	SnapshotKey       string          `json:"snapshot_key"`
	PageSize          *int            `json:"page_size"`
	ImageMaxBytes     *int64          `json:"image_max_bytes"`
	ImageAllowedTypes []string        `json:"image_allowed_types"`
	QueryCacheSize    *int            `json:"query_cache_size"`
	QueryCacheTTL     *timex.Duration `json:"query_cache_ttl"`
	HTTPAddr          string          `json:"http_addr"`
	ShutdownTimeout   *timex.Duration `json:"shutdown_timeout"`
	LogLevel          string          `json:"log_level"`
	LogFormat         string          `json:"log_format"`
	S3                *JsonS3         `json:"s3"`
}

type JsonS3 struct {
	Bucket          string  `json:"bucket"`
	Region          string  `json:"region"`
	Endpoint        string  `json:"endpoint"`
	Prefix          *string `json:"prefix"`
	AccessKeyID     string  `json:"access_key_id"`
	SecretAccessKey string  `json:"secret_access_key"`
	PathStyle       bool    `json:"path_style"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.SlotDriver, jc.SlotDriver)
	setString(&cfg.SnapshotKey, jc.SnapshotKey)
	setString(&cfg.HTTPAddr, jc.HTTPAddr)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)

	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.ImageMaxBytes != nil {
		cfg.ImageMaxBytes = *jc.ImageMaxBytes
	}
	if jc.ImageAllowedTypes != nil {
		cfg.ImageAllowedTypes = jc.ImageAllowedTypes
	}
	if jc.QueryCacheSize != nil {
		cfg.QueryCacheSize = *jc.QueryCacheSize
	}
	if jc.QueryCacheTTL != nil {
		cfg.QueryCacheTTL = jc.QueryCacheTTL.Duration
	}
	if jc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}

	if s := jc.S3; s != nil {
		setString(&cfg.S3.Bucket, s.Bucket)
		setString(&cfg.S3.Region, s.Region)
		setString(&cfg.S3.Endpoint, s.Endpoint)
		setString(&cfg.S3.AccessKeyID, s.AccessKeyID)
		setString(&cfg.S3.SecretAccessKey, s.SecretAccessKey)
		if s.Prefix != nil {
			cfg.S3.Prefix = *s.Prefix
		}
		cfg.S3.PathStyle = s.PathStyle
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
