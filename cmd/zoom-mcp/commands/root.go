package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/florianilch/zoom-mcp/internal/app"
	"github.com/florianilch/zoom-mcp/internal/observability"
)

// Execute runs the root command with the given context and arguments.
func Execute(ctx context.Context, args []string) error {
	return rootCommand().Run(ctx, args)
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "zoom-mcp",
		Usage:   "Zoom API tools for MCP clients",
		Version: app.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug|info|warn|error)",
				Value: slog.LevelInfo.String(),
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text|json)",
				Value: string(app.DefaultConfigLogFormat),
			},
			&cli.StringFlag{
				Name:  "credentials--storage",
				Usage: "where Zoom app credentials are stored (env|file|keyring)",
				Value: string(app.DefaultConfigCredentialsStorage),
			},
			&cli.StringFlag{
				Name:  "credentials--file",
				Usage: "credentials file for file storage",
			},
			&cli.StringFlag{
				Name:  "credentials--keyring-user",
				Usage: "keyring user for keyring storage",
			},
			&cli.StringFlag{
				Name:  "upstream--token-url",
				Usage: "Zoom OAuth token endpoint",
				Value: app.DefaultConfigUpstreamTokenURL,
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			authCommand(),
			credentialsCommand(),
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the Zoom tools over MCP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "telemetry--exporter",
				Usage: "OpenTelemetry log exporter (none|stdout|otlp-grpc|otlp-http)",
				Value: string(app.DefaultConfigTelemetryExporter),
			},
			&cli.StringFlag{
				Name:  "server--transport",
				Usage: "MCP transport (stdio|http|sse)",
				Value: string(app.DefaultConfigServerTransport),
			},
			&cli.StringFlag{
				Name:  "server--host",
				Usage: "server host for http and sse",
				Value: app.DefaultConfigServerHost,
			},
			&cli.IntFlag{
				Name:  "server--port",
				Usage: "server port for http and sse",
				Value: int(app.DefaultConfigServerPort),
			},
			&cli.BoolFlag{
				Name:  "metrics--enabled",
				Usage: "serve Prometheus metrics on /metrics (http and sse only)",
			},
			&cli.StringFlag{
				Name:  "upstream--base-url",
				Usage: "Zoom API base URL",
				Value: app.DefaultConfigUpstreamBaseURL,
			},
			&cli.DurationFlag{
				Name:  "upstream--timeout",
				Usage: "timeout per Zoom API call",
				Value: app.DefaultConfigUpstreamTimeout,
			},
		},
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, shutdown, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer flush(shutdown)

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}

	slog.InfoContext(ctx, "starting")

	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("app failed: %w", err)
	}

	slog.InfoContext(ctx, "stopped gracefully")
	return nil
}

// setup loads the config and installs logging. Callers must run the returned
// shutdown func before exiting.
func setup(ctx context.Context, cmd *cli.Command) (*app.Config, observability.ShutdownFunc, error) {
	cfg, err := loadConfig(cmd.String("config"), cmd, os.Environ)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	shutdown, err := observability.Instrument(ctx, observability.Options{
		Level:    cfg.LogLevel,
		Format:   string(cfg.LogFormat),
		Exporter: cfg.Telemetry.Exporter,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up observability layer: %w", err)
	}

	return cfg, shutdown, nil
}

func flush(shutdown observability.ShutdownFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), app.DefaultConfigShutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		slog.Error("failed to flush telemetry", "error", err)
	}
}
