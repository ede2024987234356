package ctxlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestL_empty(t *testing.T) {
	ctx := context.Background()
	logger := L(ctx)
	assert.NotNil(t, logger)
}

func TestWithLogger(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx := WithLogger(context.Background(), logger)
	assert.Equal(t, logger, L(ctx))
}

func TestWithFields(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx := WithLogger(context.Background(), logger)
	ctx = WithFields(ctx, zap.String("index", "twitter"))
	assert.NotEqual(t, logger, L(ctx))
}
