package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/inspection_data/internal/app"
	"github.com/kurochkinivan/inspection_data/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	var configFile string

	return &cli.Command{
		Name:     "inspection_data",
		Usage:    "Read-only inspection data API",
		Version:  version,
		Flags:    flags(&configFile),
		Commands: []*cli.Command{tokenCmd(), migrateCmd()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := newLogger(cmd.String("log-level"), cmd.String("log-format"))
			if err != nil {
				return err
			}

			cfg := config.Load(cmd)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func yamlSource(key string, configFile *string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(configFile)))
}

func flags(configFile *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: configFile,
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Set log level (debug, info, warn, error)",
			Value:   "info",
			Sources: yamlSource("log.level", configFile),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Set log format (text, json)",
			Value:   "text",
			Sources: yamlSource("log.format", configFile),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: yamlSource("postgresql.host", configFile),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: yamlSource("postgresql.port", configFile),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Sources: yamlSource("postgresql.username", configFile),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: yamlSource("postgresql.password", configFile),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "inspection_data",
			Sources: yamlSource("postgresql.dbname", configFile),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: yamlSource("http.host", configFile),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: yamlSource("http.port", configFile),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: yamlSource("http.idle_timeout", configFile),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: yamlSource("http.read_timeout", configFile),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: yamlSource("http.write_timeout", configFile),
		},
		&cli.StringFlag{
			Name:    "auth-secret",
			Usage:   "Set HS256 secret used to sign and verify bearer tokens",
			Sources: cli.NewValueSourceChain(cli.EnvVar("INSPECTION_DATA_AUTH_SECRET"), yaml.YAML("auth.secret", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:    "storage-endpoint",
			Usage:   "Set S3-compatible storage endpoint used to presign s3:// links, empty disables presigning",
			Sources: yamlSource("storage.endpoint", configFile),
		},
		&cli.StringFlag{
			Name:    "storage-access-key",
			Usage:   "Set storage access key",
			Sources: yamlSource("storage.access_key", configFile),
		},
		&cli.StringFlag{
			Name:    "storage-secret-key",
			Usage:   "Set storage secret key",
			Sources: yamlSource("storage.secret_key", configFile),
		},
		&cli.BoolFlag{
			Name:    "storage-use-ssl",
			Usage:   "Use HTTPS for presigned links",
			Value:   true,
			Sources: yamlSource("storage.use_ssl", configFile),
		},
		&cli.StringFlag{
			Name:    "storage-region",
			Usage:   "Set storage region, required with storage-endpoint",
			Value:   "us-east-1",
			Sources: yamlSource("storage.region", configFile),
		},
		&cli.DurationFlag{
			Name:    "storage-link-ttl",
			Usage:   "Set lifetime of presigned links",
			Value:   15 * time.Minute,
			Sources: yamlSource("storage.link_ttl", configFile),
		},
	}
}

func newLogger(level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(os.Stdout, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stdout, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
