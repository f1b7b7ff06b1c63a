package cache

import (
	"testing"

	"github.com/Domenick1991/ticketoffice/config"
	"github.com/stretchr/testify/assert"
)

func TestNotifiedKey(t *testing.T) {
	assert.Equal(t, "notified:event:3f2a", notifiedKey("3f2a"))
	assert.NotEqual(t, notifiedKey("a"), notifiedKey("b"))
}

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379", DB: 3})

	opts := c.client.Options()
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 3, opts.DB)
	assert.NoError(t, c.Close())
}
