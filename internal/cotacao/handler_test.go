package cotacao_test

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

// cenario é uma solicitação aprovada com dois itens e dois fornecedores
// cadastrados, pronta para receber cotações.
type cenario struct {
	solicitacaoID uint
	itemIDs       []uint
	fornecedorA   uint
	fornecedorB   uint
}

func montarCenario(t *testing.T, router *mux.Router) cenario {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/requests", map[string]interface{}{
		"requestData": map[string]interface{}{
			"requesterName": "Ana Souza",
			"application":   "Obra do galpão",
			"costCenter":    "CC-200",
			"category":      "estoque",
			"priority":      "media",
		},
		"items": []map[string]interface{}{
			{"description": "Tubo PVC 100mm", "quantity": 10},
			{"description": "Joelho 90º 100mm", "quantity": 20},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var criada map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &criada))
	solicitacaoID := uint(criada["id"].(float64))

	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/requests/%d/status", solicitacaoID),
		map[string]interface{}{"status": "Aprovado"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/requests/%d", solicitacaoID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detalhe map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detalhe))

	var itemIDs []uint
	for _, raw := range detalhe["items"].([]interface{}) {
		item := raw.(map[string]interface{})
		itemIDs = append(itemIDs, uint(item["id"].(float64)))
	}
	require.Len(t, itemIDs, 2)

	criarFornecedor := func(nome string) uint {
		w := doJSON(t, router, http.MethodPost, "/api/suppliers",
			map[string]interface{}{"nome": nome, "categoria": "materiais"})
		require.Equal(t, http.StatusCreated, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return uint(resp["id"].(float64))
	}

	return cenario{
		solicitacaoID: solicitacaoID,
		itemIDs:       itemIDs,
		fornecedorA:   criarFornecedor("Hidráulica Norte"),
		fornecedorB:   criarFornecedor("Casa do Encanador"),
	}
}

// enviarLote cadastra cotações dos dois fornecedores para os dois itens.
func enviarLote(t *testing.T, router *mux.Router, c cenario) {
	t.Helper()
	itensDe := func(precoBase float64) []map[string]interface{} {
		return []map[string]interface{}{
			{"itemId": c.itemIDs[0], "price": precoBase, "quantity": 10, "paymentCondition": "30 dias"},
			{"itemId": c.itemIDs[1], "price": precoBase / 2, "quantity": 20, "paymentCondition": "30 dias"},
		}
	}
	w := doJSON(t, router, http.MethodPost, "/api/quotes", map[string]interface{}{
		"requestId": c.solicitacaoID,
		"suppliers": []map[string]interface{}{
			{"id": c.fornecedorA, "items": itensDe(50)},
			{"id": c.fornecedorB, "items": itensDe(60)},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func listarCotacoes(t *testing.T, router *mux.Router) []map[string]interface{} {
	t.Helper()
	w := doJSON(t, router, http.MethodGet, "/api/quotes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lista []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
	return lista
}

func TestCriarCotacoesEmLote(t *testing.T) {
	router := novoRouter(t)
	c := montarCenario(t, router)

	enviarLote(t, router, c)
	require.Len(t, listarCotacoes(t, router), 4)

	t.Run("solicitação passa para Em Cotação", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/requests/%d", c.solicitacaoID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var detalhe map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detalhe))
		assert.Equal(t, "Em Cotação", detalhe["status"])
	})

	t.Run("reenvio do lote não duplica linhas", func(t *testing.T) {
		enviarLote(t, router, c)
		assert.Len(t, listarCotacoes(t, router), 4)
	})

	t.Run("valor total é preço vezes quantidade", func(t *testing.T) {
		for _, q := range listarCotacoes(t, router) {
			esperado := q["preco"].(float64) * q["quantidade"].(float64)
			assert.Equal(t, esperado, q["valor_total"])
		}
	})
}

func TestBuscarCotacoesPorSolicitacao(t *testing.T) {
	router := novoRouter(t)
	c := montarCenario(t, router)
	enviarLote(t, router, c)

	w := doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/quotes/by-request/%d", c.solicitacaoID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var grupos []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grupos))
	require.Len(t, grupos, 2)

	porFornecedor := make(map[float64]map[string]interface{})
	for _, g := range grupos {
		porFornecedor[g["id"].(float64)] = g
	}

	grupoA := porFornecedor[float64(c.fornecedorA)]
	require.NotNil(t, grupoA)
	assert.Equal(t, "Hidráulica Norte", grupoA["name"])

	items := grupoA["items"].([]interface{})
	require.Len(t, items, 2)
	primeiro := items[0].(map[string]interface{})
	assert.Equal(t, "Tubo PVC 100mm", primeiro["itemName"])
	assert.Equal(t, float64(500), primeiro["totalValue"])
	assert.Equal(t, "30 dias", primeiro["paymentCondition"])
	assert.Equal(t, "Em Cotação", primeiro["status"])
}

func TestListarSolicitacoesCotaveis(t *testing.T) {
	router := novoRouter(t)
	c := montarCenario(t, router)

	listar := func() []map[string]interface{} {
		w := doJSON(t, router, http.MethodGet, "/api/quotes/requests", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var lista []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
		return lista
	}

	// Aprovada: apta a cotação.
	lista := listar()
	require.Len(t, lista, 1)
	assert.Equal(t, float64(c.solicitacaoID), lista[0]["id"])

	// Em Cotação: continua apta.
	enviarLote(t, router, c)
	require.Len(t, listar(), 1)

	// Recém-criada (Solicitado): fora da lista.
	doJSON(t, router, http.MethodPost, "/api/requests", map[string]interface{}{
		"requestData": map[string]interface{}{"requesterName": "Beto"},
		"items":       []map[string]interface{}{{"description": "Trena", "quantity": 1}},
	})
	assert.Len(t, listar(), 1)
}

func TestAtualizarStatusAcumulaAprovacoes(t *testing.T) {
	router := novoRouter(t)
	c := montarCenario(t, router)
	enviarLote(t, router, c)

	cotacaoID := uint(listarCotacoes(t, router)[0]["id"].(float64))

	patch := func(status string) {
		t.Helper()
		w := doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/quotes/%d/status", cotacaoID),
			map[string]interface{}{"status": status, "approvedBy": "Carlos Comprador", "approvalLevel": 2})
		require.Equal(t, http.StatusOK, w.Code)
	}

	aprovacoesDeCotacao := func() []map[string]interface{} {
		w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/requests/%d", c.solicitacaoID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var detalhe map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detalhe))

		var out []map[string]interface{}
		for _, raw := range detalhe["approvals"].([]interface{}) {
			a := raw.(map[string]interface{})
			if a["etapa"] == "Cotação" {
				out = append(out, a)
			}
		}
		return out
	}

	patch("Aprovada")
	registros := aprovacoesDeCotacao()
	require.Len(t, registros, 1)
	assert.Equal(t, "Aprovada", registros[0]["status"])
	assert.Equal(t, "Carlos Comprador", registros[0]["aprovado_por"])
	assert.Equal(t, float64(2), registros[0]["nivel_aprovacao"])

	// Edições repetidas acrescentam histórico em vez de sobrescrever.
	patch("Rejeitada")
	require.Len(t, aprovacoesDeCotacao(), 2)

	t.Run("cotação inexistente não anota aprovação", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, "/api/quotes/9999/status",
			map[string]interface{}{"status": "Aprovada"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, aprovacoesDeCotacao(), 2)
	})
}

func TestFinalizarCotacao(t *testing.T) {
	router := novoRouter(t)
	c := montarCenario(t, router)
	enviarLote(t, router, c)

	w := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/quotes/%d/finalize", c.solicitacaoID),
		map[string]interface{}{
			"selectedItems": []map[string]interface{}{
				{"supplierId": c.fornecedorA, "price": 50, "quantity": 10},
				{"supplierId": c.fornecedorA, "price": 25, "quantity": 20},
			},
			"approvedBy":    "Maria Diretora",
			"approvalLevel": 3,
		})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(1000), resp["totalValue"])

	t.Run("cotações particionadas entre aprovadas e rejeitadas", func(t *testing.T) {
		for _, q := range listarCotacoes(t, router) {
			switch uint(q["fornecedor_id"].(float64)) {
			case c.fornecedorA:
				assert.Equal(t, "Aprovada", q["status"])
			case c.fornecedorB:
				assert.Equal(t, "Rejeitada", q["status"])
			}
		}
	})

	t.Run("solicitação liberada para compra", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/requests/%d", c.solicitacaoID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var detalhe map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detalhe))
		assert.Equal(t, "Aprovado para Compra", detalhe["status"])
	})
}

func TestDeletarCotacao(t *testing.T) {
	router := novoRouter(t)
	c := montarCenario(t, router)
	enviarLote(t, router, c)

	id := uint(listarCotacoes(t, router)[0]["id"].(float64))
	w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/quotes/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Len(t, listarCotacoes(t, router), 3)
}
