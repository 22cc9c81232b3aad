package config

import (
	"flag"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/lostfound/internal/flagx"
)

var knownFlags = []string{
	"-d", "-driver", "-k", "-p", "-a", "-l", "-log-format",
	"-cache-size", "-cache-ttl", "-image-max-bytes", "-image-types",
	"-s3-bucket", "-s3-region", "-s3-endpoint", "-s3-prefix",
}

var boolFlags = []string{"-s3-path-style"}

// parseFlags populates Config fields from command-line flags.
//
//	-d string            SQLite database path
//	-driver string       slot driver: sqlite, s3 or memory
//	-k string            snapshot slot key
//	-p int               page size
//	-a string            HTTP listen address
//	-l string            log level
//	-log-format string   text or json
//	-cache-size int      query cache entries (0 disables)
//	-cache-ttl int       query cache TTL in seconds
//	-image-max-bytes int max decoded image size (0 = unlimited)
//	-image-types string  comma separated MIME allow-list
//	-s3-bucket, -s3-region, -s3-endpoint, -s3-prefix string
//	-s3-path-style       use path-style S3 addressing
//
// Unknown arguments are filtered out with flagx.FilterArgs so the flag set
// never sees REPL input or other components' flags.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, knownFlags, boolFlags...)

	fs := flag.NewFlagSet("lostfound", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.SlotDriver, "driver", cfg.SlotDriver, "slot driver: sqlite, s3 or memory")
	fs.StringVar(&cfg.SnapshotKey, "k", cfg.SnapshotKey, "snapshot slot key")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "page size")
	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.IntVar(&cfg.QueryCacheSize, "cache-size", cfg.QueryCacheSize, "query cache entries")
	cacheTTL := fs.Int("cache-ttl", int(cfg.QueryCacheTTL.Seconds()), "query cache TTL (in seconds)")
	fs.Int64Var(&cfg.ImageMaxBytes, "image-max-bytes", cfg.ImageMaxBytes, "max decoded image size")
	imageTypes := fs.String("image-types", strings.Join(cfg.ImageAllowedTypes, ","), "allowed image MIME types")
	fs.StringVar(&cfg.S3.Bucket, "s3-bucket", cfg.S3.Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3.Region, "s3-region", cfg.S3.Region, "S3 region")
	fs.StringVar(&cfg.S3.Endpoint, "s3-endpoint", cfg.S3.Endpoint, "S3 endpoint URL")
	fs.StringVar(&cfg.S3.Prefix, "s3-prefix", cfg.S3.Prefix, "S3 key prefix")
	fs.BoolVar(&cfg.S3.PathStyle, "s3-path-style", cfg.S3.PathStyle, "use path-style S3 addressing")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cache-ttl":
			cfg.QueryCacheTTL = time.Duration(*cacheTTL) * time.Second
		case "image-types":
			cfg.ImageAllowedTypes = splitList(*imageTypes)
		}
	})
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
