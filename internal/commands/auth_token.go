package commands

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"admin_backend/internal/utils"
)

// AuthTokenCommand issues a bearer token for the admin API.
func AuthTokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth:token",
		Usage: "Issue an access token signed with the configured secret",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Value: "admin"},
			&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			token, err := utils.GenerateAccessToken(c.String("subject"), []byte(cfg.Auth.AccessTokenSecret), c.Duration("ttl"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}
