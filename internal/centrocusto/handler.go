package centrocusto

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sisdineng/api-compras/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type centroCustoRequest struct {
	IDCC      string `json:"id_cc"`
	Descricao string `json:"descricao"`
	Ativo     bool   `json:"ativo"`
}

type itemListaDTO struct {
	IDCC      string `json:"id_cc"`
	Descricao string `json:"descricao"`
}

// ListarCentrosCusto devolve código e descrição, ordenados pelo código.
func (h *Handler) ListarCentrosCusto(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar centros de custo", err)
		return
	}

	resposta := make([]itemListaDTO, 0, len(lista))
	for _, c := range lista {
		resposta = append(resposta, itemListaDTO{IDCC: c.IDCC, Descricao: c.Descricao})
	}
	utils.RespondJSON(w, http.StatusOK, resposta)
}

func (h *Handler) BuscarPorCodigo(w http.ResponseWriter, r *http.Request) {
	c, err := h.Repository.BuscarPorCodigo(h.DB, mux.Vars(r)["id_cc"])
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "Centro de custo não encontrado", nil)
		return
	}
	utils.RespondJSON(w, http.StatusOK, c)
}

func (h *Handler) CriarCentroCusto(w http.ResponseWriter, r *http.Request) {
	var req centroCustoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	if req.IDCC == "" || req.Descricao == "" {
		utils.RespondErro(w, http.StatusBadRequest, "Código (id_cc) e descrição são obrigatórios", nil)
		return
	}

	existe, err := h.Repository.ExisteCodigo(h.DB, req.IDCC)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar centro de custo", err)
		return
	}
	if existe {
		utils.RespondErro(w, http.StatusBadRequest, "Código já cadastrado", nil)
		return
	}

	c := CentroCusto{IDCC: req.IDCC, Descricao: req.Descricao, Ativo: req.Ativo}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar centro de custo", err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      c.ID,
	})
}

func (h *Handler) AtualizarCentroCusto(w http.ResponseWriter, r *http.Request) {
	idCC := mux.Vars(r)["id_cc"]

	var req centroCustoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}
	if req.Descricao == "" {
		utils.RespondErro(w, http.StatusBadRequest, "Descrição é obrigatória", nil)
		return
	}

	existe, err := h.Repository.ExisteCodigo(h.DB, idCC)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar centro de custo", err)
		return
	}
	if !existe {
		utils.RespondErro(w, http.StatusNotFound, "Centro de custo não encontrado", nil)
		return
	}

	if err := h.Repository.Atualizar(h.DB, idCC, req.Descricao, req.Ativo); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar centro de custo", err)
		return
	}
	utils.RespondMensagem(w, http.StatusOK, true, "Centro de custo atualizado com sucesso")
}

func (h *Handler) DeletarCentroCusto(w http.ResponseWriter, r *http.Request) {
	removidas, err := h.Repository.Deletar(h.DB, mux.Vars(r)["id_cc"])
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao remover centro de custo", err)
		return
	}
	if removidas == 0 {
		utils.RespondErro(w, http.StatusNotFound, "Centro de custo não encontrado", nil)
		return
	}
	utils.RespondMensagem(w, http.StatusOK, true, "Centro de custo removido com sucesso")
}
