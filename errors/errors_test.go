package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(404, "article %s not found", "abc")
	assert.Equal(t, 404, err.GetCode())
	assert.Equal(t, "article abc not found", err.GetMessage())
	assert.Contains(t, err.Error(), "code=404")
	assert.Contains(t, err.Error(), "message=article abc not found")
}

func TestWithCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := ServiceUnavailable("upstream unavailable").WithCause(cause)

	assert.Contains(t, err.Error(), "cause=connection refused")
	assert.Equal(t, cause, Unwrap(err))

	// 不可变性：原错误不应被修改
	base := Internal("boom")
	_ = base.WithCause(cause)
	assert.Nil(t, base.GetCause())
}

func TestWithMetadata(t *testing.T) {
	err := BadRequest("invalid query").WithMetadata(map[string]string{
		"field": "topic",
		"value": "",
	})

	assert.Contains(t, err.Error(), "metadata={field=topic, value=}")

	// 空元数据返回原实例
	same := err.WithMetadata(nil)
	assert.Same(t, err, same)
}

func TestIs(t *testing.T) {
	a := NotFound("article not found")
	b := NotFound("article not found")
	c := NotFound("feed not found")

	assert.True(t, Is(a, b))
	assert.False(t, Is(a, c))
	assert.False(t, Is(a, fmt.Errorf("article not found")))
}

func TestFromError(t *testing.T) {
	require.Nil(t, FromError(nil))

	orig := Unauthorized("token expired")
	assert.Same(t, orig, FromError(orig))

	converted := FromError(fmt.Errorf("plain"))
	assert.Equal(t, UnknownCode, converted.GetCode())
	assert.Equal(t, "plain", converted.GetMessage())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, 500, "ignored"))

	cause := fmt.Errorf("dial tcp: timeout")
	err := Wrap(cause, 504, "fetch articles failed")
	assert.Equal(t, 504, err.GetCode())
	assert.True(t, Is(Unwrap(err), cause) || Unwrap(err) == cause)
}

func TestCode(t *testing.T) {
	assert.Equal(t, 200, Code(nil))
	assert.Equal(t, 429, Code(TooManyRequests("slow down")))
	assert.Equal(t, UnknownCode, Code(fmt.Errorf("plain")))
}
