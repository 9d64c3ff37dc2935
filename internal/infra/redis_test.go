package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisSinURLDevuelveClienteNulo(t *testing.T) {
	rdb, err := NewRedis("")
	require.NoError(t, err)
	assert.Nil(t, rdb, "sin REDIS_URL la cache queda deshabilitada")
}

func TestNewRedisURLInvalida(t *testing.T) {
	_, err := NewRedis("not-a-redis-url")
	require.Error(t, err)
}
