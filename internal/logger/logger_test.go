package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithFormat_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, 0, "json")

	l.With("component", "test").Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "test", entry["component"])
}

func TestNewWithFormat_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(&buf, 4, "text")

	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "msg=kept")
}
