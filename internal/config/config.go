package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	PostgreSQL
	HTTP
	Auth
	Storage
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Auth struct {
	Secret string
}

// Storage is optional: an empty Endpoint disables link presigning.
type Storage struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	LinkTTL   time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
		Auth: Auth{
			Secret: cmd.String("auth-secret"),
		},
		Storage: Storage{
			Endpoint:  cmd.String("storage-endpoint"),
			AccessKey: cmd.String("storage-access-key"),
			SecretKey: cmd.String("storage-secret-key"),
			UseSSL:    cmd.Bool("storage-use-ssl"),
			Region:    cmd.String("storage-region"),
			LinkTTL:   cmd.Duration("storage-link-ttl"),
		},
	}
}

func (c *Config) Validate() error {
	if err := c.PostgreSQL.Validate(); err != nil {
		return err
	}

	if c.Auth.Secret == "" {
		return errors.New("auth-secret is required")
	}

	return c.Storage.Validate()
}

func (p PostgreSQL) Validate() error {
	for _, req := range []struct{ name, value string }{
		{"pg-username", p.Username},
		{"pg-password", p.Password},
		{"pg-dbname", p.DBName},
	} {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}

	return nil
}

// Validate requires a region with an endpoint, otherwise every presign
// costs a bucket location lookup.
func (s Storage) Validate() error {
	if s.Endpoint == "" {
		return nil
	}

	if s.AccessKey == "" || s.SecretKey == "" {
		return errors.New("storage-access-key and storage-secret-key are required when storage-endpoint is set")
	}

	if s.Region == "" {
		return errors.New("storage-region is required when storage-endpoint is set")
	}

	return nil
}
