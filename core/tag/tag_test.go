package tag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nested struct {
	Path string `default:"/health"`
}

type sample struct {
	Addr     string        `default:":8080"`
	Attempts int           `default:"3"`
	Timeout  time.Duration `default:"10s"`
	Ratio    float64       `default:"0.5"`
	Enabled  bool          `default:"true"`
	Topics   []string      `default:"ai,ml,llm"`
	Health   nested

	unexported string `default:"ignored"`
}

func TestApplyDefaults(t *testing.T) {
	s := &sample{}
	require.NoError(t, ApplyDefaults(s))

	assert.Equal(t, ":8080", s.Addr)
	assert.Equal(t, 3, s.Attempts)
	assert.Equal(t, 10*time.Second, s.Timeout)
	assert.Equal(t, 0.5, s.Ratio)
	assert.True(t, s.Enabled)
	assert.Equal(t, []string{"ai", "ml", "llm"}, s.Topics)
	assert.Equal(t, "/health", s.Health.Path)
	assert.Empty(t, s.unexported)
}

func TestApplyDefaultsKeepsExisting(t *testing.T) {
	s := &sample{Addr: ":9090", Attempts: 5, Topics: []string{"tech"}}
	require.NoError(t, ApplyDefaults(s))

	assert.Equal(t, ":9090", s.Addr)
	assert.Equal(t, 5, s.Attempts)
	assert.Equal(t, []string{"tech"}, s.Topics)
}

func TestApplyDefaultsInvalidTarget(t *testing.T) {
	assert.ErrorIs(t, ApplyDefaults(sample{}), ErrTargetMustBePointer)

	var p *sample
	assert.ErrorIs(t, ApplyDefaults(p), ErrTargetIsNil)

	v := 1
	assert.ErrorIs(t, ApplyDefaults(&v), ErrUnsupportedType)
}

func TestApplyDefaultsBadValue(t *testing.T) {
	type bad struct {
		N int `default:"not-a-number"`
	}
	assert.Error(t, ApplyDefaults(&bad{}))
}
