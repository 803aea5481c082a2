package logger_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/openkraft/commitkraft/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestInitializeTo_DefaultLevelHidesInfo(t *testing.T) {
	var buf bytes.Buffer
	logger.InitializeTo(&buf, false, false)

	ctx := context.Background()
	logger.Info(ctx, "hidden")
	logger.Warn(ctx, "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitializeTo_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger.InitializeTo(&buf, false, true)

	logger.Info(context.Background(), "linting commits", "count", 3)
	logger.Debug(context.Background(), "too detailed")

	assert.Contains(t, buf.String(), "count=3")
	assert.NotContains(t, buf.String(), "too detailed")
}

func TestWith_AttachesFields(t *testing.T) {
	var buf bytes.Buffer
	logger.InitializeTo(&buf, true, false)

	ctx := logger.With(context.Background(), "commit", "abc1234")
	logger.Error(ctx, "lint failed", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "commit=abc1234")
	assert.Contains(t, out, "error=boom")
}

func TestFromContext_NilContext(t *testing.T) {
	//nolint:staticcheck
	assert.NotNil(t, logger.FromContext(nil))
}
