package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/florianilch/zoom-mcp/internal/app"
	"github.com/florianilch/zoom-mcp/internal/credentials"
)

// readSecret reads a secret from the terminal without echo.
var readSecret = func(prompt io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("--client-secret is required when stdin is not a terminal")
	}

	_, _ = fmt.Fprint(prompt, "Client secret: ")
	secret, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("reading client secret: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "inspect Zoom authentication",
		Commands: []*cli.Command{
			{
				Name:   "check",
				Usage:  "fetch an access token and report its expiry",
				Action: authCheckAction,
			},
		},
	}
}

func authCheckAction(ctx context.Context, cmd *cli.Command) error {
	cfg, shutdown, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer flush(shutdown)

	tokens, err := app.NewTokenManager(cfg)
	if err != nil {
		return err
	}

	token, err := tokens.TokenContext(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	// The token itself is never printed.
	expiry := token.Expiry
	_, err = fmt.Fprintf(cmd.Root().Writer, "authenticated: Bearer token valid until %s (%s)\n",
		expiry.Format(time.RFC3339), time.Until(expiry).Round(time.Second))
	return err
}

func credentialsCommand() *cli.Command {
	return &cli.Command{
		Name:  "credentials",
		Usage: "manage stored Zoom app credentials",
		Commands: []*cli.Command{
			{
				Name:  "set",
				Usage: "store Server-to-Server OAuth app credentials in the file or keyring backend",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "client-id", Usage: "Zoom app client ID", Required: true},
					&cli.StringFlag{Name: "account-id", Usage: "Zoom account ID", Required: true},
					&cli.StringFlag{Name: "client-secret", Usage: "Zoom app client secret (prompted for when omitted)"},
				},
				Action: credentialsSetAction,
			},
		},
	}
}

func credentialsSetAction(ctx context.Context, cmd *cli.Command) error {
	cfg, shutdown, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer flush(shutdown)

	if cfg.Credentials.Storage == app.CredentialsStorageEnv {
		return errors.New("env storage is read-only, choose --credentials--storage file or keyring")
	}

	secret := cmd.String("client-secret")
	if secret == "" {
		if secret, err = readSecret(cmd.Root().ErrWriter); err != nil {
			return err
		}
	}

	creds := credentials.Credentials{
		ClientID:     cmd.String("client-id"),
		ClientSecret: secret,
		AccountID:    cmd.String("account-id"),
	}
	if err := creds.Validate(); err != nil {
		return err
	}

	store, err := cfg.Credentials.NewStore()
	if err != nil {
		return err
	}
	if err := store.Write(ctx, creds); err != nil {
		return fmt.Errorf("storing credentials: %w", err)
	}

	_, err = fmt.Fprintf(cmd.Root().Writer, "credentials stored in %s storage\n", cfg.Credentials.Storage)
	return err
}
