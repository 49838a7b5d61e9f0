package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sisdineng/api-compras/internal/aprovacao"
	"github.com/sisdineng/api-compras/internal/auth"
	"github.com/sisdineng/api-compras/internal/centrocusto"
	"github.com/sisdineng/api-compras/internal/config"
	"github.com/sisdineng/api-compras/internal/cotacao"
	"github.com/sisdineng/api-compras/internal/fornecedor"
	"github.com/sisdineng/api-compras/internal/funcionario"
	"github.com/sisdineng/api-compras/internal/models"
	"github.com/sisdineng/api-compras/internal/nivelacesso"
	"github.com/sisdineng/api-compras/internal/solicitacao"
	"github.com/sisdineng/api-compras/internal/utils"
	"gorm.io/gorm"
)

const versao = "1.0.0"

// Migrate cria ou ajusta as tabelas de todos os modelos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&solicitacao.Solicitacao{},
		&models.Item{},
		&models.Cotacao{},
		&aprovacao.Aprovacao{},
		&fornecedor.Fornecedor{},
		&funcionario.Funcionario{},
		&nivelacesso.NivelAcesso{},
		&centrocusto.CentroCusto{},
	)
}

// NewRouter monta todas as rotas da API sobre o banco informado.
func NewRouter(db *gorm.DB, cfg *config.Config) *mux.Router {
	solicitacaoHandler := solicitacao.NewHandler(db)
	cotacaoHandler := cotacao.NewHandler(db)
	fornecedorHandler := fornecedor.NewHandler(db)
	funcionarioHandler := funcionario.NewHandler(db, cfg.App.NivelAcessoEsquema)
	centroCustoHandler := centrocusto.NewHandler(db)

	r := mux.NewRouter()

	// Rotas de solicitações
	r.HandleFunc("/api/requests", solicitacaoHandler.ListarSolicitacoes).Methods("GET")
	r.HandleFunc("/api/requests", solicitacaoHandler.CriarSolicitacao).Methods("POST")
	r.HandleFunc("/api/requests/{id}", solicitacaoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/api/requests/{id}", solicitacaoHandler.AtualizarSolicitacao).Methods("PUT")
	r.HandleFunc("/api/requests/{id}/status", solicitacaoHandler.AtualizarStatus).Methods("PATCH")

	// Rotas de cotações
	r.HandleFunc("/api/quotes", cotacaoHandler.ListarCotacoes).Methods("GET")
	r.HandleFunc("/api/quotes", cotacaoHandler.CriarCotacoes).Methods("POST")
	r.HandleFunc("/api/quotes/requests", cotacaoHandler.ListarSolicitacoesCotaveis).Methods("GET")
	r.HandleFunc("/api/quotes/by-request/{requestId}", cotacaoHandler.BuscarPorSolicitacao).Methods("GET")
	r.HandleFunc("/api/quotes/{id}/status", cotacaoHandler.AtualizarStatus).Methods("PATCH")
	r.HandleFunc("/api/quotes/{requestId}/finalize", cotacaoHandler.Finalizar).Methods("POST")
	r.HandleFunc("/api/quotes/{id}", cotacaoHandler.DeletarCotacao).Methods("DELETE")

	// Rotas de fornecedores
	r.HandleFunc("/api/suppliers", fornecedorHandler.ListarFornecedores).Methods("GET")
	r.HandleFunc("/api/suppliers", fornecedorHandler.CriarFornecedor).Methods("POST")
	r.HandleFunc("/api/suppliers/{id}", fornecedorHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/api/suppliers/{id}", fornecedorHandler.AtualizarFornecedor).Methods("PUT")
	r.HandleFunc("/api/suppliers/{id}", fornecedorHandler.DeletarFornecedor).Methods("DELETE")

	// Rotas de usuários; literais registradas antes das parametrizadas
	r.HandleFunc("/api/users/login", funcionarioHandler.Login).Methods("POST")
	r.HandleFunc("/api/users/nivel-acesso", funcionarioHandler.CriarNivelAcesso).Methods("POST")
	r.HandleFunc("/api/users/nivel-acesso/{matricula}", funcionarioHandler.AtualizarNivelAcesso).Methods("PUT")
	r.Handle("/api/users/me",
		auth.MiddlewareAutenticacao(http.HandlerFunc(funcionarioHandler.Me))).Methods("GET")
	r.HandleFunc("/api/users", funcionarioHandler.ListarFuncionarios).Methods("GET")
	r.HandleFunc("/api/users", funcionarioHandler.CriarFuncionario).Methods("POST")
	r.HandleFunc("/api/users/{id}", funcionarioHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/api/users/{id}", funcionarioHandler.AtualizarFuncionario).Methods("PUT")
	r.HandleFunc("/api/users/{id}/senha", funcionarioHandler.AlterarSenha).Methods("PATCH")
	r.HandleFunc("/api/users/{id}/status", funcionarioHandler.AtualizarStatus).Methods("PATCH")

	// Rotas de centros de custo
	r.HandleFunc("/api/cost-centers", centroCustoHandler.ListarCentrosCusto).Methods("GET")
	r.HandleFunc("/api/cost-centers", centroCustoHandler.CriarCentroCusto).Methods("POST")
	r.HandleFunc("/api/cost-centers/{id_cc}", centroCustoHandler.BuscarPorCodigo).Methods("GET")
	r.HandleFunc("/api/cost-centers/{id_cc}", centroCustoHandler.AtualizarCentroCusto).Methods("PUT")
	r.HandleFunc("/api/cost-centers/{id_cc}", centroCustoHandler.DeletarCentroCusto).Methods("DELETE")

	// Colaboradores operacionais
	r.HandleFunc("/api/test-connection", testConnectionHandler(db)).Methods("GET")
	r.HandleFunc("/api/status", statusHandler(cfg)).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondErro(w, http.StatusNotFound, "Rota não encontrada", nil)
	})

	return r
}

func testConnectionHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			utils.RespondErro(w, http.StatusInternalServerError, "Falha na conexão com o banco de dados", err)
			return
		}
		utils.RespondMensagem(w, http.StatusOK, true, "Conexão com banco de dados estabelecida!")
	}
}

func statusHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"status":      "online",
			"version":     versao,
			"timestamp":   time.Now().Format(time.RFC3339),
			"environment": cfg.App.Environment,
		})
	}
}
