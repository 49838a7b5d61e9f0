package solicitacao_test

import (
	"bytes"
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

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
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

func criarSolicitacao(t *testing.T, router *mux.Router, itens ...string) uint {
	t.Helper()
	items := make([]map[string]interface{}, 0, len(itens))
	for _, descricao := range itens {
		items = append(items, map[string]interface{}{"description": descricao, "quantity": 2})
	}
	w := doJSON(t, router, http.MethodPost, "/api/requests", map[string]interface{}{
		"requestData": map[string]interface{}{
			"requesterName":    "João Pereira",
			"application":      "Manutenção predial",
			"costCenter":       "CC-100",
			"deliveryLocation": "Almoxarifado central",
			"deliveryDeadline": "2026-10-01",
			"category":         "consumo",
			"reason":           "Reposição de estoque",
			"priority":         "alta",
		},
		"items": items,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return uint(resp["id"].(float64))
}

func buscarDetalhe(t *testing.T, router *mux.Router, id uint) map[string]interface{} {
	t.Helper()
	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/requests/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detalhe map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detalhe))
	return detalhe
}

func TestCriarEBuscarSolicitacao(t *testing.T) {
	router := novoRouter(t)

	id := criarSolicitacao(t, router, "Cimento CP-II 50kg", "Vergalhão 10mm")
	detalhe := buscarDetalhe(t, router, id)

	assert.Equal(t, "Solicitado", detalhe["status"])
	assert.Equal(t, "João Pereira", detalhe["nome_solicitante"])
	assert.NotEmpty(t, detalhe["data_solicitacao"])

	items := detalhe["items"].([]interface{})
	require.Len(t, items, 2)
	primeiro := items[0].(map[string]interface{})
	assert.Equal(t, "Cimento CP-II 50kg", primeiro["descricao"])
	assert.Equal(t, float64(2), primeiro["quantidade"])

	assert.Empty(t, detalhe["approvals"])
	assert.Empty(t, detalhe["quotes"])

	t.Run("aparece na listagem", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/requests", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var lista []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
		require.Len(t, lista, 1)
		assert.Equal(t, float64(id), lista[0]["id"])
	})
}

func TestBuscarSolicitacaoInexistente(t *testing.T) {
	router := novoRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/requests/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/requests/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAtualizarSolicitacaoParcial(t *testing.T) {
	router := novoRouter(t)
	id := criarSolicitacao(t, router, "Luvas de raspa")

	// Só o motivo muda; os demais campos mantêm o valor gravado.
	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/requests/%d", id),
		map[string]interface{}{"motivo": "Troca de equipe"})
	require.Equal(t, http.StatusOK, w.Code)

	detalhe := buscarDetalhe(t, router, id)
	assert.Equal(t, "Troca de equipe", detalhe["motivo"])
	assert.Equal(t, "Manutenção predial", detalhe["aplicacao"])
	assert.Equal(t, "alta", detalhe["prioridade"])
	assert.Equal(t, "2026-10-01", detalhe["prazo_entrega"])

	t.Run("404 para id inexistente", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/requests/999",
			map[string]interface{}{"motivo": "qualquer"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAtualizarStatusComAprovacao(t *testing.T) {
	router := novoRouter(t)
	id := criarSolicitacao(t, router, "Capacete classe B")

	patchStatus := func(status string, approval map[string]interface{}) {
		t.Helper()
		body := map[string]interface{}{"status": status}
		if approval != nil {
			body["approvalData"] = approval
		}
		w := doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/requests/%d/status", id), body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	t.Run("sem approvalData só muda o status", func(t *testing.T) {
		patchStatus("Em Análise", nil)
		detalhe := buscarDetalhe(t, router, id)
		assert.Equal(t, "Em Análise", detalhe["status"])
		assert.Empty(t, detalhe["approvals"])
	})

	t.Run("aprovação da etapa é registrada com defaults", func(t *testing.T) {
		patchStatus("Aprovado", map[string]interface{}{})

		detalhe := buscarDetalhe(t, router, id)
		approvals := detalhe["approvals"].([]interface{})
		require.Len(t, approvals, 1)
		a := approvals[0].(map[string]interface{})
		assert.Equal(t, "Solicitação", a["etapa"])
		assert.Equal(t, "Aprovado", a["status"])
		assert.Equal(t, "Sistema", a["aprovado_por"])
		assert.Equal(t, float64(1), a["nivel_aprovacao"])
	})

	t.Run("nova decisão da mesma etapa sobrescreve a anterior", func(t *testing.T) {
		patchStatus("Rejeitado", map[string]interface{}{
			"etapa":           "Solicitação",
			"aprovado_por":    "Maria Diretora",
			"nivel_aprovacao": 3,
			"motivo_rejeicao": "Orçamento estourado",
		})

		detalhe := buscarDetalhe(t, router, id)
		approvals := detalhe["approvals"].([]interface{})
		require.Len(t, approvals, 1)
		a := approvals[0].(map[string]interface{})
		assert.Equal(t, "Rejeitado", a["status"])
		assert.Equal(t, "Maria Diretora", a["aprovado_por"])
		assert.Equal(t, "Orçamento estourado", a["motivo_rejeicao"])
	})

	t.Run("etapa distinta preserva a decisão anterior", func(t *testing.T) {
		patchStatus("Em Cotação", map[string]interface{}{
			"etapa":        "Cotação",
			"status":       "Em Cotação",
			"aprovado_por": "Carlos Comprador",
		})

		detalhe := buscarDetalhe(t, router, id)
		approvals := detalhe["approvals"].([]interface{})
		require.Len(t, approvals, 2)

		porEtapa := make(map[string]map[string]interface{})
		for _, raw := range approvals {
			a := raw.(map[string]interface{})
			porEtapa[a["etapa"].(string)] = a
		}
		assert.Equal(t, "Rejeitado", porEtapa["Solicitação"]["status"])
		assert.Equal(t, "Em Cotação", porEtapa["Cotação"]["status"])
	})
}
