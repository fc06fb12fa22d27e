package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DebugWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(true, &buf)

	logger.Debug("probing descriptor", "folder", "cordova-plugin-device")

	assert.Contains(t, buf.String(), "plugincheck")
	assert.Contains(t, buf.String(), "probing descriptor")
	assert.Contains(t, buf.String(), "folder=cordova-plugin-device")
}

func TestNew_QuietDiscards(t *testing.T) {
	var buf bytes.Buffer
	logger := New(false, &buf)

	logger.Debug("probing descriptor")
	logger.Error("boom")

	assert.Empty(t, buf.String())
	assert.False(t, logger.IsDebug())
}
