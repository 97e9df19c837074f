package news

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpx "github.com/kochabx/newswire/transport/http"
)

func newTestRouter(t *testing.T, archive *fakeArchive) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Article{})
	})

	svc, err := NewService(nil, upstream, archive, nil, testLogger())
	require.NoError(t, err)

	h := NewHandler(svc, testLogger())
	r := gin.New()
	api := r.Group("/api/v1")
	h.Register(api)
	h.RegisterAdmin(api.Group("/admin"))
	return r
}

func performRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHandlerListArticles(t *testing.T) {
	archive := newFakeArchive()
	archive.articles["a1"] = Article{ExternalID: "a1", Title: "hello", Topics: []string{"ai"}}
	r := newTestRouter(t, archive)

	w := performRequest(r, http.MethodGet, "/api/v1/articles?topic=ai")
	require.Equal(t, http.StatusOK, w.Code)

	var resp httpx.Response[[]Article]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "hello", resp.Data[0].Title)
}

func TestHandlerListRejectsBadQuery(t *testing.T) {
	r := newTestRouter(t, newFakeArchive())

	w := performRequest(r, http.MethodGet, "/api/v1/articles?limit=9999")
	require.Equal(t, http.StatusOK, w.Code)

	var resp httpx.Response[any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 400, resp.Code)
}

func TestHandlerGetArticle(t *testing.T) {
	archive := newFakeArchive()
	archive.articles["a1"] = Article{ExternalID: "a1", Title: "hello"}
	r := newTestRouter(t, archive)

	w := performRequest(r, http.MethodGet, "/api/v1/articles/a1")

	var resp httpx.Response[Article]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "hello", resp.Data.Title)
}

func TestHandlerGetArticleNotFound(t *testing.T) {
	r := newTestRouter(t, newFakeArchive())

	w := performRequest(r, http.MethodGet, "/api/v1/articles/missing")

	var resp httpx.Response[any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 404, resp.Code)
}

func TestHandlerRefresh(t *testing.T) {
	r := newTestRouter(t, newFakeArchive())

	w := performRequest(r, http.MethodPost, "/api/v1/admin/refresh")

	var resp httpx.Response[any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
}
