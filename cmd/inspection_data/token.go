package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kurochkinivan/inspection_data/internal/auth"
	"github.com/kurochkinivan/inspection_data/internal/domain"
	"github.com/urfave/cli/v3"
)

// tokenCmd issues tokens for local development against the same secret the server verifies with.
func tokenCmd() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Print a signed bearer token",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "subject",
				Usage: "Set token subject",
				Value: "developer",
			},
			&cli.StringSliceFlag{
				Name:  "role",
				Usage: "Grant `ROLE` (repeatable)",
				Value: []string{string(domain.RoleReadOnly)},
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Usage: "Set token lifetime",
				Value: time.Hour,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			verifier, err := auth.NewVerifier(cmd.String("auth-secret"))
			if err != nil {
				return err
			}

			roles := make([]domain.Role, 0, len(cmd.StringSlice("role")))
			for _, role := range cmd.StringSlice("role") {
				roles = append(roles, domain.Role(role))
			}

			token, err := verifier.Issue(cmd.String("subject"), roles, cmd.Duration("ttl"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(os.Stdout, token)
			return err
		},
	}
}
