package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))

	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("correlation_id"))
	assert.True(t, keepInDevelopment("client_id"))
	assert.True(t, keepInDevelopment("user_agent"))
	assert.False(t, keepInDevelopment("query"))
}

func TestConfigure(t *testing.T) {
	assert.NoError(t, Configure("info"))
	assert.Error(t, Configure("verboso"))
	SetupTestLogger()
}
