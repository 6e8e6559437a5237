package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&CustomFormatter{})
	l.SetOutput(buf)
	l.SetLevel(logrus.DebugLevel)
	return l
}

func TestCustomFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.WithField("model", "gpt-3.5-turbo").Warn("slow response")

	out := buf.String()
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "slow response model=gpt-3.5-turbo")
	assert.Equal(t, byte('\n'), out[len(out)-1])
}

func TestKratosLogger(t *testing.T) {
	var buf bytes.Buffer
	kl := NewKratosLogger(newBufferLogger(&buf))

	helper := log.NewHelper(log.With(kl, "caller", "campaign.go:42", "service.name", "ad_generator"))
	helper.Errorf("provider failed: %s", "timeout")

	out := buf.String()
	assert.Contains(t, out, "[ERRO] [campaign.go:42] provider failed: timeout")
	assert.Contains(t, out, "service.name=ad_generator")
	assert.NotContains(t, out, "caller=")
}

func TestKratosLoggerUnpaired(t *testing.T) {
	var buf bytes.Buffer
	kl := NewKratosLogger(newBufferLogger(&buf))

	require.NoError(t, kl.Log(log.LevelInfo, "msg", "hello", "dangling"))
	assert.Contains(t, buf.String(), "dangling=KEYVALS UNPAIRED")
}

func TestInitLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	require.NoError(t, InitLogger("debug", path))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	assert.FileExists(t, path)

	require.NoError(t, InitLogger("not-a-level", ""))
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
