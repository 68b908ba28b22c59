package observe

import (
	"errors"
	"io"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"weather-lookup/pkg/logger"
)

func TestNewSentryHook_EmptyDSN(t *testing.T) {
	hook, err := NewSentryHook("test", "test-app", false, "")
	assert.Error(t, err)
	assert.Nil(t, hook)
}

func TestSentryHook_MapLevel(t *testing.T) {
	h := &SentryHook{}

	assert.Equal(t, sentry.LevelDebug, h.mapLevel(zapcore.DebugLevel))
	assert.Equal(t, sentry.LevelInfo, h.mapLevel(zapcore.InfoLevel))
	assert.Equal(t, sentry.LevelWarning, h.mapLevel(zapcore.WarnLevel))
	assert.Equal(t, sentry.LevelError, h.mapLevel(zapcore.ErrorLevel))
	assert.Equal(t, sentry.LevelFatal, h.mapLevel(zapcore.FatalLevel))
}

func TestSentryHook_CapturesErrorsFromLogger(t *testing.T) {
	var captured []*sentry.Event
	hook := newSentryHook("test", "test-app", func(e *sentry.Event) { captured = append(captured, e) })

	l := logger.NewZapLogger(logger.Options{
		AppName: "test-app",
		AppEnv:  "test",
		Hooks:   []io.Writer{hook},
	}, io.Discard)
	hook.SetLogger(l)

	l.Info("not forwarded")
	l.Warning("not forwarded either")
	l.Error(errors.New("provider unreachable"), map[string]any{"city": "London"})

	require.Len(t, captured, 1)
	event := captured[0]
	assert.Equal(t, "provider unreachable", event.Message)
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "test", event.Environment)
	assert.Equal(t, "test-app", event.Extra["AppName"])
	assert.Equal(t, "provider unreachable", event.Extra["Error"])
	require.Len(t, event.Exception, 1)
	assert.Equal(t, "provider unreachable", event.Exception[0].Value)
}

func TestSentryHook_WriteIgnoresGarbage(t *testing.T) {
	called := false
	hook := newSentryHook("test", "test-app", func(*sentry.Event) { called = true })

	payload := []byte("not json")
	n, err := hook.Write(payload)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.False(t, called)
}
