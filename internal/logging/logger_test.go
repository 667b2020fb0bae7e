package logging

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZap(t *testing.T) {
	logger, err := NewZap("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.log.V(1).Enabled())

	logger, err = NewZap("info", true)
	require.NoError(t, err)
	assert.True(t, logger.log.V(1).Enabled())

	_, err = NewZap("loud", false)
	assert.Error(t, err)
}

func TestNew_FallsBackToDiscard(t *testing.T) {
	logger := New(logr.Logger{})
	assert.NotPanics(t, func() {
		logger.WithName("x").WithValues("k", "v").Info("hello")
		logger.Debug("hidden")
	})
}
