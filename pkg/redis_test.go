package pkg

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/quiz-selection-service/internal/config"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(&config.Config{RedisURL: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	defer client.Close()

	_, err = NewRedisClient(&config.Config{RedisURL: "not a url"})
	assert.Error(t, err)

	addr := mr.Addr()
	mr.Close()
	_, err = NewRedisClient(&config.Config{RedisURL: "redis://" + addr})
	assert.Error(t, err)
}
