package main

import (
	"context"
	"fmt"

	"github.com/kurochkinivan/inspection_data/internal/config"
	"github.com/kurochkinivan/inspection_data/internal/repository/postgresql"
	"github.com/urfave/cli/v3"
)

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply or inspect database schema migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "direction",
				Aliases: []string{"d"},
				Usage:   "Migration `DIRECTION`: up, down or version",
				Value:   string(postgresql.MigrateUp),
				Validator: func(s string) error {
					_, err := postgresql.ParseMigrationDirection(s)
					return err
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := newLogger(cmd.String("log-level"), cmd.String("log-format"))
			if err != nil {
				return err
			}

			direction, err := postgresql.ParseMigrationDirection(cmd.String("direction"))
			if err != nil {
				return err
			}

			cfg := config.Load(cmd)
			if err := cfg.PostgreSQL.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return postgresql.Migrate(ctx, log, cfg.PostgreSQL, direction)
		},
	}
}
