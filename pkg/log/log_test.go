package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepInDevelopment(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"correlation_id", true},
		{"status_code", true},
		{"user_id", true},
		{"registro_id", true},
		{"user_agent", true},
		{"query", false},
		{"remote_addr", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, keepInDevelopment(tt.key))
		})
	}
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestSetup_NivelInvalido(t *testing.T) {
	assert.Error(t, Setup("barulhento"))
	assert.NoError(t, Setup("debug"))
}
