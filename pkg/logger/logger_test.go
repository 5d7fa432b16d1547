package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopadmin/pkg/logger"
	"github.com/shashiranjanraj/shopadmin/pkg/reqid"
)

func TestProductionLoggerWritesJSONWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "production")

	ctx := reqid.WithValue(context.Background(), "rid-1")
	log.InfoContext(ctx, "hello", "n", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "rid-1", line["request_id"])
	assert.Equal(t, float64(3), line["n"])
}

func TestProductionLoggerSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger.New(&buf, "production").Debug("noise")
	assert.Empty(t, buf.String())
}

func TestLocalLoggerIsText(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "local").With("component", "test")
	log.DebugContext(context.Background(), "plain")

	out := buf.String()
	assert.True(t, strings.Contains(out, "msg=plain"), out)
	assert.Contains(t, out, "component=test")
	assert.NotContains(t, out, "request_id")
}

func TestWithCtxFallsBackToBase(t *testing.T) {
	assert.Same(t, logger.L, logger.WithCtx(context.Background()))
	assert.NotSame(t, logger.L, logger.WithCtx(reqid.WithValue(context.Background(), "x")))
}
