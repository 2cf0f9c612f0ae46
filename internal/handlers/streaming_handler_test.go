package handlers_test

import (
	"net/http"
	"testing"

	"streaming-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStreamingDefaultsActive(t *testing.T) {
	api := newTestAPI(t)

	body := api.createStreaming(t, map[string]any{
		"name":  "Netflix",
		"color": "#E50914",
	})
	assert.Equal(t, "Netflix", body["name"])
	assert.Equal(t, "#E50914", body["color"])
	assert.Nil(t, body["logo_url"])
	assert.Equal(t, true, body["active"])

	body = api.createStreaming(t, map[string]any{"name": "Defunct TV", "active": false})
	assert.Equal(t, false, body["active"])
}

func TestCreateStreamingRejectsDuplicate(t *testing.T) {
	api := newTestAPI(t)

	api.createStreaming(t, map[string]any{"name": "Netflix"})

	resp := api.request(t, http.MethodPost, "/api/streamings", api.admin, map[string]any{"name": "Netflix"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Streaming já existe", decodeMap(t, resp)["error"])

	// the failed insert leaves no row behind
	var count int64
	require.NoError(t, api.db.DB.Model(&models.StreamingPlatform{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	resp = api.request(t, http.MethodPost, "/api/streamings", api.admin, map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Nome é obrigatório", decodeMap(t, resp)["error"])
}

func TestListStreamingsActiveOnly(t *testing.T) {
	api := newTestAPI(t)

	resp := api.request(t, http.MethodGet, "/api/streamings", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeList(t, resp))

	api.createStreaming(t, map[string]any{"name": "Netflix"})
	api.createStreaming(t, map[string]any{"name": "Defunct TV", "active": false})

	// inactive platforms are hidden by default
	resp = api.request(t, http.MethodGet, "/api/streamings", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeList(t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Netflix", list[0]["name"])

	resp = api.request(t, http.MethodGet, "/api/streamings?active_only=false", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, resp), 2)
}

func TestUpdateStreaming(t *testing.T) {
	api := newTestAPI(t)

	created := api.createStreaming(t, map[string]any{"name": "Netflix"})
	path := "/api/streamings/" + itoa(int(created["id"].(float64)))

	resp := api.request(t, http.MethodPut, path, api.admin, map[string]any{
		"logo_url": "https://example.com/netflix.png",
		"active":   false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Netflix", body["name"])
	assert.Equal(t, "https://example.com/netflix.png", body["logo_url"])
	assert.Equal(t, false, body["active"])

	resp = api.request(t, http.MethodPut, "/api/streamings/9999", api.admin, map[string]any{"name": "Max"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Streaming não encontrado", decodeMap(t, resp)["error"])
}

func TestDeleteStreaming(t *testing.T) {
	api := newTestAPI(t)

	created := api.createStreaming(t, map[string]any{"name": "Netflix"})
	api.createContent(t, map[string]any{
		"title": "Akira", "type": "anime",
		"streaming_ids": []any{created["id"]},
	})

	path := "/api/streamings/" + itoa(int(created["id"].(float64)))
	resp := api.request(t, http.MethodDelete, path, api.admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Streaming removido com sucesso", decodeMap(t, resp)["message"])

	// linked content survives, only the availability link goes
	resp = api.request(t, http.MethodGet, "/api/content", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeList(t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, []any{}, list[0]["streamings"])

	resp = api.request(t, http.MethodDelete, path, api.admin, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUploadPresignRequiresFilename(t *testing.T) {
	api := newTestAPI(t)

	resp := api.request(t, http.MethodGet, "/api/upload/presign", api.admin, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "filename é obrigatório", decodeMap(t, resp)["error"])

	resp = api.request(t, http.MethodGet, "/api/upload/presign?filename=poster.png", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
