package fetch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/newswire/errors"
)

type article struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestGetSuccessFirstAttempt(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(article{ID: "1", Title: "go 1.25 released"})
	}))
	defer server.Close()

	client := New(server.URL)

	var got article
	err := client.Get("/articles/1", WithResponse(&got))

	require.NoError(t, err)
	assert.Equal(t, "go 1.25 released", got.Title)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetrySucceedsOnThirdAttempt(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(article{ID: "1", Title: "third time lucky"})
	}))
	defer server.Close()

	client := New(server.URL)

	var got article
	err := client.Get("/articles/1", WithResponse(&got))

	require.NoError(t, err)
	assert.Equal(t, "third time lucky", got.Title)
	assert.Equal(t, int32(3), calls.Load())
}

func TestExhaustionAfterThreeAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.Get("/articles")

	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Contains(t, err.Error(), "request failed")
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestEmptyPathFailsWithoutNetworkCall(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.Get("")

	require.Error(t, err)
	assert.Zero(t, calls.Load())
	assert.Contains(t, err.Error(), "endpoint path is empty")
}

func TestValidationAndExhaustionShareErrorKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL)

	var validationErr, exhaustionErr *errors.Error
	require.True(t, errors.As(client.Get(""), &validationErr))
	require.True(t, errors.As(client.Get("/articles"), &exhaustionErr))

	// 同一错误类别，只有消息内容可以区分失败阶段
	assert.Equal(t, validationErr.GetCode(), exhaustionErr.GetCode())
	assert.NotEqual(t, validationErr.GetMessage(), exhaustionErr.GetMessage())
}

func TestTimeoutCountsAsAttemptFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := New(server.URL, WithTimeout(50*time.Millisecond), WithAttempts(1))

	start := time.Now()
	err := client.Get("/slow")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Less(t, time.Since(start), 200*time.Millisecond)
	assert.Contains(t, err.Error(), "request failed")
}

func TestTimeoutSharedAcrossAttempts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	// 单个截止时间覆盖整个调用：超时后剩余尝试立即失败，不会再等一个完整超时
	client := New(server.URL, WithTimeout(50*time.Millisecond))

	start := time.Now()
	err := client.Get("/slow")

	require.Error(t, err)
	assert.Less(t, time.Since(start), 300*time.Millisecond)
}

func TestRepeatedCallsIndependent(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(article{ID: "1"})
	}))
	defer server.Close()

	client := New(server.URL)

	require.NoError(t, client.Get("/articles/1"))
	require.NoError(t, client.Get("/articles/1"))
	assert.Equal(t, int32(2), calls.Load())
}

func TestPostBodyReplayedOnRetry(t *testing.T) {
	var calls atomic.Int32
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := json.Marshal(map[string]any{"ok": true})
		raw := make([]byte, r.ContentLength)
		r.Body.Read(raw)
		bodies = append(bodies, string(raw))

		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write(b)
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.Post("/summaries", article{ID: "7", Title: "retry me"})

	require.NoError(t, err)
	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
}

func TestWithHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "v1", r.Header.Get("X-Api-Version"))
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := New(server.URL)
	require.NoError(t, client.Get("/articles", WithHeader(map[string]string{"X-Api-Version": "v1"})))
}

func TestUndecodableBodyRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := New(server.URL)

	var got article
	err := client.Get("/articles/1", WithResponse(&got))

	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestUnreachableBaseAddress(t *testing.T) {
	client := New("http://127.0.0.1:1", WithTimeout(2*time.Second))

	err := client.Get("/articles")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}
