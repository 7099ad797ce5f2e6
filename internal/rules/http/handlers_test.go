package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geekpro798/rivetly-backend/internal/auth"
	"github.com/geekpro798/rivetly-backend/internal/catalog"
	"github.com/geekpro798/rivetly-backend/internal/rules/export"
	"github.com/geekpro798/rivetly-backend/internal/rules/renderer"
)

func newTestRouter(t *testing.T, uid string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.Builtin()
	svc := export.NewService(renderer.New(cat), nil)
	h := NewHandler(cat, svc)

	router := gin.New()
	group := router.Group("/rules")
	if uid != "" {
		group.Use(func(c *gin.Context) { c.Set(auth.CtxFirebaseUID, uid) })
	}
	Register(group, h)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetCatalog(t *testing.T) {
	router := newTestRouter(t, "")

	t.Run("english labels by default", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/rules/catalog", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, true, body["ok"])
		assert.Len(t, body["constraints"], 9)
		assert.Len(t, body["modes"], 3)
		assert.Len(t, body["platforms"], 5)
		assert.Contains(t, w.Body.String(), "Strict TypeScript")
	})

	t.Run("chinese labels on request", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/rules/catalog?locale=zh", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "严格 TypeScript")
	})
}

func TestRenderEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	t.Run("renders a preview", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/rules/render", map[string]any{
			"mode":         "feature",
			"selected_ids": []string{"strict_ts"},
			"platform":     "CURSOR",
			"locale":       "en",
		})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		content, _ := body["content"].(string)
		assert.Contains(t, content, "# ROLE: Full-stack Senior Architect")
		assert.Contains(t, content, "Strict TypeScript")
		assert.NotContains(t, content, "RIVETLY_SNAPSHOT_START")
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/rules/render", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExportEndpoint(t *testing.T) {
	router := newTestRouter(t, "uid-1")

	t.Run("writes the platform rule file", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/rules/export", map[string]any{
			"mode":         "feature",
			"selected_ids": []string{"strict_ts"},
			"platform":     "cursor",
		})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, ".cursorrules", body["file_name"])
		content, _ := body["content"].(string)
		assert.Contains(t, content, "RIVETLY_SNAPSHOT_START")
	})

	t.Run("rejects a misspelled platform id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/rules/export", map[string]any{
			"mode":     "feature",
			"platform": "cursorr",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "unknown platform", decodeBody(t, w)["error"])
	})

	t.Run("omitted platform falls back to the generic file", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/rules/export", map[string]any{
			"mode": "feature",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "instructions.md", decodeBody(t, w)["file_name"])
	})
}

func TestRestoreEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	t.Run("recovers a snapshot from an exported file", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/rules/export", map[string]any{
			"mode":         "testing",
			"selected_ids": []string{"test_vitest"},
			"platform":     "TRAE",
		})
		require.Equal(t, http.StatusOK, w.Code)
		exported := decodeBody(t, w)["content"].(string)

		w = doJSON(t, router, http.MethodPost, "/rules/restore", map[string]any{"content": exported})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		require.Equal(t, true, body["found"])
		snap := body["snapshot"].(map[string]any)
		assert.Equal(t, "testing", snap["m"])
		assert.Equal(t, "TRAE", snap["p"])
	})

	t.Run("plain file reads as not found", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/rules/restore", map[string]any{"content": "just some rules"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["found"])
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/rules/restore", map[string]any{"content": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateCustomEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	t.Run("creates with a derived id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/rules/custom-constraints", map[string]any{
			"label":  "Naming",
			"prompt": "Use camelCase",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		rule := body["constraint"].(map[string]any)
		assert.Equal(t, "Naming", rule["label"])
		id, _ := rule["id"].(string)
		assert.Regexp(t, `^user_[0-9a-z]+_\d+$`, id)
	})

	t.Run("blank prompt is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/rules/custom-constraints", map[string]any{
			"label":  "Naming",
			"prompt": "   ",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLastExportEndpoint(t *testing.T) {
	// No session store wired; the endpoint reports no record rather than erroring.
	router := newTestRouter(t, "uid-1")

	w := doJSON(t, router, http.MethodGet, "/rules/last-export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["found"])
}
