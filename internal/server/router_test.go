package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sisdineng/api-compras/internal/config"
	"github.com/sisdineng/api-compras/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func novoRouter(t *testing.T) *mux.Router {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, server.Migrate(db))

	cfg := &config.Config{App: config.AppConfig{
		Environment:        "test",
		NivelAcessoEsquema: config.EsquemaColunas,
	}}
	return server.NewRouter(db, cfg)
}

func get(t *testing.T, router *mux.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStatusEndpoint(t *testing.T) {
	router := novoRouter(t)

	w := get(t, router, "/api/status")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp["status"])
	assert.Equal(t, "test", resp["environment"])
	assert.NotEmpty(t, resp["version"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestTestConnectionEndpoint(t *testing.T) {
	router := novoRouter(t)

	w := get(t, router, "/api/test-connection")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestRotaDesconhecida(t *testing.T) {
	router := novoRouter(t)

	w := get(t, router, "/api/nao-existe")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Rota não encontrada", resp["message"])
}

func TestMetricsEndpoint(t *testing.T) {
	router := novoRouter(t)

	w := get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}
