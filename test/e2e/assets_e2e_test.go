package e2e_test

import (
	"bytes"
	"image/color"
	"net/http"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/hashing"
)

func pngFixture(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(64, 48, color.NRGBA{B: 255, A: 255}), imaging.PNG))
	return buf.Bytes()
}

func TestE2E_Assets_Lifecycle(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	data := pngFixture(t)
	hash := hashing.NewBlake2bHasher().Hash(data)

	var assetID string

	t.Run("upload image writes every variant", func(t *testing.T) {
		resp := app.upload(t, "banner.png", "image/png", data, map[string]string{"cache_control": "max-age=60"}, app.authHeader())
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]any
		parseResponse(t, resp, &body)

		assetID = body["id"].(string)
		assert.Equal(t, hash, body["hash"])
		assert.Equal(t, "origin", body["kind"])
		assert.Equal(t, "image", body["category"])
		assert.Equal(t, "https://stub-storage.example.com/images/origin/"+hash+".png", body["url"])
		assert.Len(t, body["variants"], 3)

		assert.ElementsMatch(t, []string{
			"images/origin/" + hash + ".png",
			"images/small/" + hash + ".png",
			"images/small/" + hash + ".webp",
		}, app.Sink.Keys())

		webp, ok := app.Sink.Object("images/small/" + hash + ".webp")
		require.True(t, ok)
		assert.Equal(t, "image/webp", webp.ContentType)
		assert.Equal(t, storage.VisibilityPublicRead, webp.Visibility)
		assert.Equal(t, "max-age=60", webp.Params["CacheControl"])
	})

	t.Run("duplicate upload conflicts", func(t *testing.T) {
		resp := app.upload(t, "again.png", "image/png", data, nil, app.authHeader())
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("same bytes as thumbnail is a new asset", func(t *testing.T) {
		resp := app.upload(t, "banner.png", "image/png", data, map[string]string{"thumbnail": "true"}, app.authHeader())
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]any
		parseResponse(t, resp, &body)
		assert.Equal(t, "thumbnail", body["kind"])
		assert.Len(t, body["variants"], 1)
	})

	t.Run("list assets", func(t *testing.T) {
		resp, err := app.get("/assets?per_page=10", app.authHeader())
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		parseResponse(t, resp, &body)
		assert.Len(t, body["assets"], 2)
	})

	t.Run("get asset", func(t *testing.T) {
		resp, err := app.get("/assets/"+assetID, app.authHeader())
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		parseResponse(t, resp, &body)
		assert.Equal(t, assetID, body["id"])
		assert.Len(t, body["variants"], 3)
	})

	t.Run("delete removes record and objects", func(t *testing.T) {
		resp, err := app.delete("/assets/"+assetID, app.authHeader())
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		for _, key := range app.Sink.Keys() {
			assert.NotContains(t, key, "origin/"+hash)
			assert.NotContains(t, key, "small/"+hash)
		}

		resp, err = app.get("/assets/"+assetID, app.authHeader())
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Assets_Files(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	t.Run("non-image keeps its bytes under files/", func(t *testing.T) {
		data := []byte("%PDF-1.4\n%stub\n")
		hash := hashing.NewBlake2bHasher().Hash(data)

		resp := app.upload(t, "report.pdf", "application/pdf", data, nil, app.authHeader())
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		obj, ok := app.Sink.Object("files/" + hash + ".pdf")
		require.True(t, ok)
		assert.Equal(t, data, obj.Body)
		assert.Equal(t, "application/pdf", obj.ContentType)
	})

	t.Run("svg is an icon", func(t *testing.T) {
		data := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
		hash := hashing.NewBlake2bHasher().Hash(data)

		resp := app.upload(t, "logo.svg", "image/svg+xml", data, nil, app.authHeader())
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]any
		parseResponse(t, resp, &body)
		assert.Equal(t, "icon", body["category"])

		_, ok := app.Sink.Object("icons/" + hash + ".svg")
		assert.True(t, ok)
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		resp := app.upload(t, "empty.txt", "text/plain", nil, nil, app.authHeader())
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("requires authentication", func(t *testing.T) {
		resp := app.upload(t, "a.txt", "text/plain", []byte("a"), nil, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("oversized upload is rejected", func(t *testing.T) {
		resp := app.upload(t, "big.bin", "application/octet-stream", bytes.Repeat([]byte{1}, 3<<19), nil, app.authHeader())
		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		resp.Body.Close()
	})
}
