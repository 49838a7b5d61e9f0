package solicitacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sisdineng/api-compras/internal/aprovacao"
	"github.com/sisdineng/api-compras/internal/models"
	"github.com/sisdineng/api-compras/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Aprovacoes aprovacao.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Aprovacoes: aprovacao.NewRepository(),
	}
}

// ListarSolicitacoes retorna todas as solicitações, sem filtro.
func (h *Handler) ListarSolicitacoes(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar solicitações", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, lista)
}

// BuscarPorID devolve a solicitação com itens, aprovações e cotações.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	s, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondErro(w, http.StatusNotFound, "Solicitação não encontrada", nil)
		return
	}
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar solicitação", err)
		return
	}

	itens, err := h.Repository.ListarItens(h.DB, s.ID)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar solicitação", err)
		return
	}
	aprovacoes, err := h.Aprovacoes.ListarPorSolicitacao(h.DB, s.ID)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar solicitação", err)
		return
	}
	cotacoes, err := h.Repository.ListarCotacoes(h.DB, s.ID)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar solicitação", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, detalheSolicitacaoResponse{
		Solicitacao: *s,
		Items:       itens,
		Approvals:   aprovacoes,
		Quotes:      cotacoes,
	})
}

// CriarSolicitacao grava a solicitação e seus itens em uma única transação.
func (h *Handler) CriarSolicitacao(w http.ResponseWriter, r *http.Request) {
	var req criarSolicitacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	s := Solicitacao{
		NomeSolicitante: req.RequestData.RequesterName,
		Aplicacao:       req.RequestData.Application,
		CentroCusto:     req.RequestData.CostCenter,
		DataSolicitacao: time.Now().Format("2006-01-02"),
		LocalEntrega:    req.RequestData.DeliveryLocation,
		PrazoEntrega:    req.RequestData.DeliveryDeadline,
		Categoria:       req.RequestData.Category,
		Motivo:          req.RequestData.Reason,
		Prioridade:      req.RequestData.Priority,
		Status:          StatusSolicitado,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.Repository.Criar(tx, &s); err != nil {
			return err
		}
		for _, item := range req.Items {
			novo := models.Item{
				Descricao:     item.Description,
				Quantidade:    item.Quantity,
				SolicitacaoID: s.ID,
				IDSolicitante: 1,
			}
			if err := h.Repository.CriarItem(tx, &novo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar solicitação", err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      s.ID,
		"message": "Solicitação criada com sucesso",
	})
}

// AtualizarSolicitacao aplica um patch parcial; campos omitidos mantêm o
// valor existente.
func (h *Handler) AtualizarSolicitacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var patch atualizarSolicitacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondErro(w, http.StatusNotFound, "Solicitação não encontrada", nil)
		return
	}
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar solicitação", err)
		return
	}

	if patch.Aplicacao != nil {
		existente.Aplicacao = *patch.Aplicacao
	}
	if patch.Motivo != nil {
		existente.Motivo = *patch.Motivo
	}
	if patch.Prioridade != nil {
		existente.Prioridade = *patch.Prioridade
	}
	if patch.PrazoEntrega != nil {
		existente.PrazoEntrega = *patch.PrazoEntrega
	}
	if patch.LocalEntrega != nil {
		existente.LocalEntrega = *patch.LocalEntrega
	}

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar solicitação", err)
		return
	}
	utils.RespondMensagem(w, http.StatusOK, true, "Solicitação atualizada com sucesso")
}

// AtualizarStatus grava o novo status e, quando informado, o registro de
// aprovação da etapa correspondente.
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
		if err := h.Repository.AtualizarStatus(tx, uint(id), req.Status); err != nil {
			return err
		}
		if req.ApprovalData == nil {
			return nil
		}

		a := aprovacao.Aprovacao{
			SolicitacaoID:  uint(id),
			Etapa:          req.ApprovalData.Etapa,
			Status:         req.ApprovalData.Status,
			AprovadoPor:    req.ApprovalData.AprovadoPor,
			NivelAprovacao: req.ApprovalData.NivelAprovacao,
			MotivoRejeicao: req.ApprovalData.MotivoRejeicao,
			DataAprovacao:  time.Now().Format("2006-01-02"),
		}
		if a.Etapa == "" {
			a.Etapa = aprovacao.EtapaSolicitacao
		}
		if a.Status == "" {
			a.Status = req.Status
		}
		if a.AprovadoPor == "" {
			a.AprovadoPor = "Sistema"
		}
		if a.NivelAprovacao == 0 {
			a.NivelAprovacao = 1
		}
		return h.Aprovacoes.Upsert(tx, &a)
	})
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar status", err)
		return
	}
	utils.RespondMensagem(w, http.StatusOK, true, "Status atualizado com sucesso")
}
