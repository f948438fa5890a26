package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rgehrsitz/finsim/internal/calculation"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("chatty"))
}

func TestEngineLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "debug", true)

	var engineLogger calculation.Logger = ForEngine(logger, logrus.Fields{"scenario": "buy"})
	engineLogger.Infof("runway %d", 7)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "runway 7", line["msg"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "engine", line["component"])
	assert.Equal(t, "buy", line["scenario"])
}

func TestEngineLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	engineLogger := ForEngine(NewWithWriter(&buf, "warn", false), nil)

	engineLogger.Debugf("hidden")
	engineLogger.Infof("hidden")
	assert.Empty(t, buf.String())

	engineLogger.Warnf("shown %s", "warning")
	engineLogger.Errorf("shown %s", "error")
	assert.Contains(t, buf.String(), "shown warning")
	assert.Contains(t, buf.String(), "shown error")
}
