package cotacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sisdineng/api-compras/internal/aprovacao"
	"github.com/sisdineng/api-compras/internal/models"
	"github.com/sisdineng/api-compras/internal/solicitacao"
	"github.com/sisdineng/api-compras/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB           *gorm.DB
	Repository   Repository
	Solicitacoes solicitacao.Repository
	Aprovacoes   aprovacao.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Repository:   NewRepository(),
		Solicitacoes: solicitacao.NewRepository(),
		Aprovacoes:   aprovacao.NewRepository(),
	}
}

func (h *Handler) ListarCotacoes(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar cotações", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, lista)
}

// ListarSolicitacoesCotaveis devolve as solicitações aptas a receber
// cotação: aprovadas ou já em cotação.
func (h *Handler) ListarSolicitacoesCotaveis(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Solicitacoes.ListarPorStatus(h.DB,
		solicitacao.StatusAprovado, solicitacao.StatusEmCotacao)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar solicitações para cotação", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, lista)
}

// BuscarPorSolicitacao agrupa as cotações da solicitação por fornecedor.
func (h *Handler) BuscarPorSolicitacao(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.Atoi(mux.Vars(r)["requestId"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	cotacoes, err := h.Repository.ListarPorSolicitacao(h.DB, uint(requestID))
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar cotações", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, agruparPorFornecedor(cotacoes))
}

// CriarCotacoes grava um lote de cotações. A reinserção do mesmo par
// (solicitação, item, fornecedor) é ignorada, então reenvios do lote não
// duplicam linhas.
func (h *Handler) CriarCotacoes(w http.ResponseWriter, r *http.Request) {
	var req criarCotacoesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	var criadas []uint
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, fornecedor := range req.Suppliers {
			for _, item := range fornecedor.Items {
				existe, err := h.Repository.Existe(tx, req.RequestID, item.ItemID, fornecedor.ID)
				if err != nil {
					return err
				}
				if existe {
					continue
				}

				tipoPagamento := item.TipoPagamento
				if tipoPagamento == "" {
					tipoPagamento = item.PaymentCondition
				}
				if tipoPagamento == "" {
					tipoPagamento = "À vista"
				}

				c := models.Cotacao{
					SolicitacaoID: req.RequestID,
					ItemID:        item.ItemID,
					FornecedorID:  fornecedor.ID,
					Preco:         item.Price,
					Quantidade:    item.Quantity,
					ValorTotal:    item.Price * float64(item.Quantity),
					Condicoes:     item.PaymentCondition,
					Status:        StatusEmCotacao,
					Parcelas:      item.Parcelas,
					TipoPagamento: tipoPagamento,
				}
				if err := h.Repository.Criar(tx, &c); err != nil {
					return err
				}
				criadas = append(criadas, c.ID)
			}
		}

		return h.Solicitacoes.AtualizarStatusSe(tx, req.RequestID,
			solicitacao.StatusAprovado, solicitacao.StatusEmCotacao)
	})
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar cotação", err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Cotação criada com sucesso!",
		"createdIds": criadas,
	})
}

// AtualizarStatus muda o status da cotação e acrescenta um registro de
// aprovação na etapa de cotação. O registro é sempre inserido: edições
// repetidas acumulam histórico de auditoria.
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var req atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.Repository.AtualizarStatus(tx, uint(id), req.Status, req.ApprovedBy, req.ApprovalLevel); err != nil {
			return err
		}

		c, err := h.Repository.BuscarPorID(tx, uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Sem cotação não há solicitação para anotar; o UPDATE acima
			// também não tocou linha alguma.
			return nil
		}
		if err != nil {
			return err
		}

		a := aprovacao.Aprovacao{
			SolicitacaoID:  c.SolicitacaoID,
			Etapa:          aprovacao.EtapaCotacao,
			Status:         req.Status,
			AprovadoPor:    req.ApprovedBy,
			NivelAprovacao: req.ApprovalLevel,
			DataAprovacao:  time.Now().Format("2006-01-02"),
		}
		if a.AprovadoPor == "" {
			a.AprovadoPor = "Sistema"
		}
		if a.NivelAprovacao == 0 {
			a.NivelAprovacao = 1
		}
		return h.Aprovacoes.Inserir(tx, &a)
	})
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar status", err)
		return
	}

	utils.RespondMensagem(w, http.StatusOK, true,
		"Status da cotação atualizado e aprovação registrada com sucesso")
}

// Finalizar aprova as cotações dos fornecedores selecionados, rejeita as
// demais ainda em cotação e libera a solicitação para compra. Tudo em uma
// transação: qualquer falha desfaz a finalização inteira.
func (h *Handler) Finalizar(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.Atoi(mux.Vars(r)["requestId"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var req finalizarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	var valorTotal float64
	vistos := make(map[uint]bool)
	var fornecedores []uint
	for _, item := range req.SelectedItems {
		valorTotal += item.Price * float64(item.Quantity)
		if !vistos[item.SupplierID] {
			vistos[item.SupplierID] = true
			fornecedores = append(fornecedores, item.SupplierID)
		}
	}

	aprovadoPor := req.ApprovedBy
	if aprovadoPor == "" {
		aprovadoPor = "Sistema"
	}
	nivel := req.ApprovalLevel
	if nivel == 0 {
		nivel = 1
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		for _, fornecedorID := range fornecedores {
			if err := h.Repository.AprovarPorFornecedor(tx, uint(requestID), fornecedorID); err != nil {
				return err
			}
			a := aprovacao.Aprovacao{
				SolicitacaoID:  uint(requestID),
				Etapa:          aprovacao.EtapaCotacao,
				Status:         StatusAprovada,
				AprovadoPor:    aprovadoPor,
				NivelAprovacao: nivel,
				DataAprovacao:  time.Now().Format("2006-01-02"),
			}
			if err := h.Aprovacoes.Inserir(tx, &a); err != nil {
				return err
			}
		}

		if len(fornecedores) > 0 {
			if err := h.Repository.RejeitarRestantes(tx, uint(requestID), fornecedores); err != nil {
				return err
			}
		}

		return h.Solicitacoes.AtualizarStatus(tx, uint(requestID),
			solicitacao.StatusAprovadoParaCompra)
	})
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao finalizar cotação", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"totalValue": valorTotal,
		"message":    "Cotação finalizada com sucesso",
	})
}

func (h *Handler) DeletarCotacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao remover cotação", err)
		return
	}
	utils.RespondMensagem(w, http.StatusOK, true, "Cotação removida com sucesso")
}
