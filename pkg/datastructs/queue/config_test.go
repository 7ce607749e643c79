package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-ringqueue/pkg/settings"
)

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name         string
		cfg          settings.Queue
		wantCapacity int
		wantErr      bool
	}{
		{"zero_uses_default", settings.Queue{}, DefaultCapacity, false},
		{"explicit", settings.Queue{Capacity: 32}, 32, false},
		{"negative_rejected", settings.Queue{Capacity: -4}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFromConfig[int](tt.cfg, zap.NewNop())
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "queue settings")
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCapacity, r.Capacity())
			assert.True(t, r.Empty())
		})
	}
}

func TestNewFromConfig_NilLogger(t *testing.T) {
	r, err := NewFromConfig[string](settings.Queue{Capacity: 1}, nil)
	require.NoError(t, err)
	require.NotNil(t, r.log)

	require.NoError(t, r.Enqueue("x"))
	assert.ErrorIs(t, r.Enqueue("y"), ErrQueueFull)
}
