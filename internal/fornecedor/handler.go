package fornecedor

import (
	"encoding/json"
	"net/http"
	"strconv"

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

// ListarFornecedores retorna todos os fornecedores já mapeados para o DTO.
func (h *Handler) ListarFornecedores(w http.ResponseWriter, r *http.Request) {
	fornecedores, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar fornecedores", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, toDTOs(fornecedores))
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	f, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "Fornecedor não encontrado", nil)
		return
	}
	utils.RespondJSON(w, http.StatusOK, toDTO(*f))
}

func (h *Handler) CriarFornecedor(w http.ResponseWriter, r *http.Request) {
	var dto FornecedorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	f := dto.toModel()
	if err := h.Repository.Criar(h.DB, &f); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar fornecedor", err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      f.ID,
		"message": "Fornecedor criado com sucesso",
	})
}

func (h *Handler) AtualizarFornecedor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var dto FornecedorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	dados := dto.toModel()
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar fornecedor", err)
		return
	}
	utils.RespondMensagem(w, http.StatusOK, true, "Fornecedor atualizado com sucesso")
}

func (h *Handler) DeletarFornecedor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao excluir fornecedor", err)
		return
	}
	utils.RespondMensagem(w, http.StatusOK, true, "Fornecedor excluído com sucesso")
}
