// Package config loads runtime configuration for the lostfound CLI and HTTP
// server.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "30s" or integer
// nanoseconds:
//
//	{
//	  "database_path": "lostfound.db",
//	  "slot_driver": "sqlite",
//	  "snapshot_key": "lostfound.items.v1",
//	  "page_size": 9,
//	  "image_max_bytes": 0,
//	  "image_allowed_types": ["image/png", "image/jpeg"],
//	  "query_cache_size": 128,
//	  "query_cache_ttl": "1m",
//	  "http_addr": ":8080",
//	  "shutdown_timeout": "5s",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "s3": {"bucket": "lf", "region": "us-east-1", "endpoint": "http://localhost:9000",
//	         "prefix": "lostfound/", "path_style": true}
//	}
//
// S3 credentials are only read from JSON; when absent the default AWS
// credential chain applies.
package config
