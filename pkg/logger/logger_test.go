package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("ruido"))
}

func TestNewWithWriter_JSONYNivel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn").Named("pedidos")

	l.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len())

	l.Warn().Str("pedido", "P-250101-0001").Msg("stock bajo")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "pedidos", entry["component"])
	assert.Equal(t, "P-250101-0001", entry["pedido"])
}
