package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/florianilch/zoom-mcp/internal/app"
	"github.com/florianilch/zoom-mcp/internal/server"
)

func environ(vars ...string) func() []string {
	return func() []string { return vars }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("", nil, environ())
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, server.TransportStdio, cfg.Server.Transport)
	assert.Equal(t, app.CredentialsStorageEnv, cfg.Credentials.Storage)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"
log_format = "json"

[server]
transport = "http"
port = 9090

[upstream]
timeout = "10s"
`), 0o600))

	cfg, err := loadConfig(path, nil, environ())
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, app.LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, server.TransportHTTP, cfg.Server.Transport)
	assert.EqualValues(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nport = 9090\n"), 0o600))

	cfg, err := loadConfig(path, nil, environ(
		"ZOOM_MCP_SERVER__PORT=7070",
		"ZOOM_MCP_SERVER__TRANSPORT=sse",
		"ZOOM_MCP_CREDENTIALS__STORAGE=keyring",
		"ZOOM_MCP_CREDENTIALS__KEYRING_USER=alice",
		"UNRELATED=1",
	))
	require.NoError(t, err)

	assert.EqualValues(t, 7070, cfg.Server.Port)
	assert.Equal(t, server.TransportSSE, cfg.Server.Transport)
	assert.Equal(t, app.CredentialsStorageKeyring, cfg.Credentials.Storage)
	assert.Equal(t, "alice", cfg.Credentials.KeyringUser)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	var cfg *app.Config
	cmd := rootCommand()
	cmd.Commands = []*cli.Command{{
		Name:  "probe",
		Flags: serveCommand().Flags,
		Action: func(_ context.Context, cmd *cli.Command) error {
			var err error
			cfg, err = loadConfig("", cmd, environ("ZOOM_MCP_SERVER__PORT=7070", "ZOOM_MCP_LOG_FORMAT=json"))
			return err
		},
	}}

	err := cmd.Run(context.Background(), []string{"zoom-mcp", "--log-level", "warn", "probe", "--server--port", "6060"})
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.EqualValues(t, 6060, cfg.Server.Port)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	// unset flags keep the value from the environment
	assert.Equal(t, app.LogFormatJSON, cfg.LogFormat)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig("", nil, environ("ZOOM_MCP_SERVER__TRANSPORT=websocket"))
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"), nil, environ())
	assert.Error(t, err)
}
