package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Single("localhost:6379")
	require.NoError(t, cfg.ApplyDefaults())

	assert.Equal(t, 3, cfg.Protocol)
	assert.Equal(t, 5*time.Second, cfg.DialTimeout)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 5*time.Minute, cfg.MaxIdleTime)
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.Validate(), ErrEmptyAddrs)

	cfg = Single("localhost:6379")
	cfg.ReadTimeout = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidTimeout)

	cfg = Single("localhost:6379")
	require.NoError(t, cfg.Validate())
}

func TestSentinelConfig(t *testing.T) {
	cfg := Sentinel("mymaster", "s1:26379", "s2:26379")
	assert.Equal(t, "mymaster", cfg.MasterName)
	assert.Len(t, cfg.Addrs, 2)
}

func TestNewRejectsNilConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
