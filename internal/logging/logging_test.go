package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	lg, err := New(&buf, "", false)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, lg.GetLevel())

	lg.Debug("hidden")
	lg.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_QuietSuppressesWarnings(t *testing.T) {
	var buf bytes.Buffer
	lg, err := New(&buf, "debug", true)
	require.NoError(t, err)
	assert.Equal(t, logrus.ErrorLevel, lg.GetLevel())

	lg.Warn("nope")
	assert.Empty(t, buf.String())
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}
