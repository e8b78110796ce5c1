package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	Setup("warn", &buf)
	t.Cleanup(func() { Setup("info", nil) })

	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	New().Info("hidden")
	New().Warn("shown")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
}

func TestSetup_UnknownLevel(t *testing.T) {
	Setup("loud", &bytes.Buffer{})
	t.Cleanup(func() { Setup("info", nil) })

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestWithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailKey, "pi@lab.example") //nolint:staticcheck
	ctx = context.WithValue(ctx, RequestIDKey, "req-1")                        //nolint:staticcheck

	l := WithContext(ctx)
	assert.Equal(t, "pi@lab.example", l.Data["user"])
	assert.Equal(t, "req-1", l.Data["request_id"])

	l = WithContext(context.WithValue(context.Background(), UserIDKey, "u-1")) //nolint:staticcheck
	assert.Equal(t, "u-1", l.Data["user"])

	l = WithContext(context.Background())
	assert.Equal(t, "anonymous", l.Data["user"])
}
