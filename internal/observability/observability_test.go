package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	slogmulti "github.com/samber/slog-multi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/processors/minsev"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
}

func TestInstrument_JSON(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	shutdown, err := Instrument(context.Background(), Options{Level: slog.LevelInfo, Format: "json", Writer: &buf})
	require.NoError(t, err)
	defer func() { _ = shutdown(context.Background()) }()

	slog.Debug("hidden")
	slog.Info("visible", "tool", "get_meeting")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "get_meeting", record["tool"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestInstrument_Text(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	_, err := Instrument(context.Background(), Options{Level: slog.LevelDebug, Format: "text", Writer: &buf})
	require.NoError(t, err)

	slog.Debug("details", "k", "v")
	assert.Contains(t, buf.String(), "msg=details k=v")
}

func TestInstrument_UnknownFormat(t *testing.T) {
	_, err := Instrument(context.Background(), Options{Format: "xml"})
	assert.Error(t, err)
}

func TestInstrument_StdoutExporter(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	shutdown, err := Instrument(context.Background(), Options{
		Level:    slog.LevelInfo,
		Format:   "text",
		Exporter: ExporterStdout,
		Writer:   &buf,
	})
	require.NoError(t, err)

	slog.Info("exported")
	require.NoError(t, shutdown(context.Background()))

	// once from the local handler, once from the exporter on flush
	assert.GreaterOrEqual(t, bytes.Count(buf.Bytes(), []byte("exported")), 2)
}

func TestFanout_KeepsPerHandlerLevels(t *testing.T) {
	var info, warn bytes.Buffer
	logger := slog.New(slogmulti.Fanout(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)).With("component", "test")

	logger.Info("one")
	logger.Warn("two")

	assert.Contains(t, info.String(), "msg=one component=test")
	assert.Contains(t, info.String(), "msg=two")
	assert.NotContains(t, warn.String(), "msg=one")
	assert.Contains(t, warn.String(), "msg=two component=test")
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, minsev.SeverityDebug, severity(slog.LevelDebug))
	assert.Equal(t, minsev.SeverityInfo, severity(slog.LevelInfo))
	assert.Equal(t, minsev.SeverityWarn, severity(slog.LevelWarn))
	assert.Equal(t, minsev.SeverityError, severity(slog.LevelError))
	assert.Equal(t, minsev.SeverityError, severity(slog.LevelError+4))
}
