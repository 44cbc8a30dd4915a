package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.WithField("user_id", "abc").Info("logged in")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "logged in", entry["msg"])
	assert.Equal(t, "abc", entry["user_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := New("chatty", nil)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
