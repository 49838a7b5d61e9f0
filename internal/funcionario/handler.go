package funcionario

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sisdineng/api-compras/internal/auth"
	"github.com/sisdineng/api-compras/internal/config"
	"github.com/sisdineng/api-compras/internal/nivelacesso"
	"github.com/sisdineng/api-compras/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Niveis     nivelacesso.Repository
}

func NewHandler(db *gorm.DB, esquema config.EsquemaNivelAcesso) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Niveis:     nivelacesso.NewRepository(esquema),
	}
}

// buscarNivel retorna nil quando a matrícula ainda não tem registro.
func (h *Handler) buscarNivel(matricula string) *nivelacesso.NivelAcesso {
	n, err := h.Niveis.BuscarPorMatricula(h.DB, matricula)
	if err != nil {
		return nil
	}
	return n
}

// ListarFuncionarios retorna todos os funcionários com o nível de acesso
// achatado na resposta.
func (h *Handler) ListarFuncionarios(w http.ResponseWriter, r *http.Request) {
	funcionarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar funcionários", err)
		return
	}
	niveis, err := h.Niveis.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar funcionários", err)
		return
	}

	porMatricula := make(map[string]*nivelacesso.NivelAcesso, len(niveis))
	for i := range niveis {
		porMatricula[niveis[i].MatFuncionario] = &niveis[i]
	}

	resposta := make([]funcionarioComNivel, 0, len(funcionarios))
	for _, f := range funcionarios {
		resposta = append(resposta, montarComNivel(f, porMatricula[f.Matricula]))
	}
	utils.RespondJSON(w, http.StatusOK, resposta)
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	f, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "Funcionário não encontrado", nil)
		return
	}
	utils.RespondJSON(w, http.StatusOK, montarComNivel(*f, h.buscarNivel(f.Matricula)))
}

// Login autentica por email e senha, restrito a funcionários ativos. A
// mensagem de erro não distingue usuário inexistente de senha incorreta.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	f, err := h.Repository.BuscarAtivoPorEmail(h.DB, req.Email)
	if err != nil || !utils.VerificarSenha(f.Senha, req.Senha) {
		utils.RespondErro(w, http.StatusUnauthorized, "Credenciais inválidas ou usuário inativo", nil)
		return
	}

	nivel := h.buscarNivel(f.Matricula)
	var nivelTag string
	var descricao *string
	var permissoes *nivelacesso.Permissoes
	if nivel != nil {
		nivelTag = nivel.Nivel
		descricao = &nivel.Descricao
		p := nivel.Pacote()
		permissoes = &p
	}

	token, err := auth.GerarToken(f.ID, nivelTag)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao realizar login", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user": map[string]interface{}{
			"id":           f.ID,
			"nome":         f.Nome,
			"email":        f.Email,
			"cargo":        f.Cargo,
			"nivel_acesso": descricao,
			"nivel":        nivelTag,
			"departamento": f.Departamento,
			"matricula":    f.Matricula,
			"permissoes":   permissoes,
		},
	})
}

// Me retorna o funcionário autenticado pelo token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	funcionarioID, ok := r.Context().Value(auth.CtxFuncionarioID).(uint)
	if !ok {
		utils.RespondErro(w, http.StatusUnauthorized, "Token inválido", nil)
		return
	}

	f, err := h.Repository.BuscarPorID(h.DB, funcionarioID)
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "Funcionário não encontrado", nil)
		return
	}
	utils.RespondJSON(w, http.StatusOK, montarComNivel(*f, h.buscarNivel(f.Matricula)))
}

func (h *Handler) AlterarSenha(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var req alterarSenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SenhaAtual == "" || req.NovaSenha == "" {
		utils.RespondErro(w, http.StatusBadRequest, "Senhas não informadas", nil)
		return
	}

	f, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondErro(w, http.StatusNotFound, "Usuário não encontrado", nil)
		return
	}
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao alterar senha", err)
		return
	}

	if !utils.VerificarSenha(f.Senha, req.SenhaAtual) {
		utils.RespondErro(w, http.StatusBadRequest, "Senha atual incorreta", nil)
		return
	}

	if err := h.Repository.AtualizarSenha(h.DB, uint(id), req.NovaSenha); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao alterar senha", err)
		return
	}
	utils.RespondMensagem(w, http.StatusOK, true, "Senha alterada com sucesso")
}

// CriarFuncionario cadastra a conta e grava o nível de acesso derivado.
// Falha na gravação do nível não desfaz o cadastro: o funcionário fica sem
// permissões até o registro ser reparado.
func (h *Handler) CriarFuncionario(w http.ResponseWriter, r *http.Request) {
	var req criarFuncionarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	if req.Nome == "" || req.Email == "" || req.Cargo == "" || req.Senha == "" || req.Matricula == "" {
		utils.RespondErro(w, http.StatusBadRequest, "Campos obrigatórios não preenchidos", nil)
		return
	}

	existe, err := h.Repository.ExisteEmailOuMatricula(h.DB, req.Email, req.Matricula)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar funcionário", err)
		return
	}
	if existe {
		utils.RespondErro(w, http.StatusBadRequest, "Email ou matrícula já cadastrados", nil)
		return
	}

	// O nível explícito tem prioridade sobre a inferência pelo cargo.
	var nivel *nivelacesso.Nivel
	if req.NivelAcesso != "" {
		nivel = nivelacesso.PermissoesPorNivel(req.NivelAcesso)
	} else {
		nivel = nivelacesso.NivelPorCargo(req.Cargo)
	}
	if nivel == nil {
		utils.RespondErro(w, http.StatusBadRequest, "Nível de acesso inválido", nil)
		return
	}

	f := Funcionario{
		Nome:         req.Nome,
		Email:        req.Email,
		Cargo:        req.Cargo,
		Status:       resolverAtivo(req.Status, req.Ativo, true),
		Departamento: req.Departamento,
		Senha:        req.Senha,
		Matricula:    req.Matricula,
	}
	if err := h.Repository.Criar(h.DB, &f); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar funcionário", err)
		return
	}

	if err := h.Niveis.Gravar(h.DB, f.Matricula, nivel); err != nil {
		slog.Warn("falha ao gravar nível de acesso; funcionário mantido",
			"matricula", f.Matricula, "error", err)
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      f.ID,
		"user":    montarComNivel(f, h.buscarNivel(f.Matricula)),
		"message": "Usuário criado com sucesso",
	})
}

// AtualizarFuncionario regrava os dados da conta e refaz o upsert do nível
// de acesso; como no cadastro, falha no nível é registrada e ignorada.
func (h *Handler) AtualizarFuncionario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var req criarFuncionarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	f := Funcionario{
		Nome:         req.Nome,
		Email:        req.Email,
		Cargo:        req.Cargo,
		Status:       resolverAtivo(req.Status, req.Ativo, true),
		Departamento: req.Departamento,
		Senha:        req.Senha,
		Matricula:    req.Matricula,
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &f, req.Senha != ""); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar funcionário", err)
		return
	}

	var nivel *nivelacesso.Nivel
	if req.NivelAcesso != "" {
		nivel = nivelacesso.PermissoesPorNivel(req.NivelAcesso)
	} else {
		nivel = nivelacesso.NivelPorCargo(req.Cargo)
	}
	if nivel != nil {
		if err := h.Niveis.Gravar(h.DB, req.Matricula, nivel); err != nil {
			slog.Warn("falha ao atualizar nível de acesso; funcionário mantido",
				"matricula", req.Matricula, "error", err)
		}
	}

	utils.RespondMensagem(w, http.StatusOK, true, "Funcionário atualizado com sucesso")
}

func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var req statusFuncionarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}
	if req.Ativo == nil && req.Status == nil {
		utils.RespondErro(w, http.StatusBadRequest, "Status não informado", nil)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusNotFound, "Usuário não encontrado", nil)
		return
	}

	ativo := resolverAtivo(req.Status, req.Ativo, true)
	if err := h.Repository.AtualizarStatus(h.DB, uint(id), ativo); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar status do usuário", err)
		return
	}
	utils.RespondMensagem(w, http.StatusOK, true, "Status do usuário atualizado com sucesso")
}

// CriarNivelAcesso é o CRUD direto sobre o esquema legado de colunas,
// paralelo à derivação automática de pacotes.
func (h *Handler) CriarNivelAcesso(w http.ResponseWriter, r *http.Request) {
	var req nivelAcessoLegadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	if _, err := h.Niveis.BuscarPorMatricula(h.DB, req.Matricula); err == nil {
		utils.RespondErro(w, http.StatusBadRequest, "Nível de acesso já existe para essa matrícula", nil)
		return
	}

	n := req.toModel()
	if err := h.Niveis.CriarLegado(h.DB, &n); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao inserir nível de acesso", err)
		return
	}
	utils.RespondMensagem(w, http.StatusCreated, true, "Nível de acesso cadastrado com sucesso")
}

func (h *Handler) AtualizarNivelAcesso(w http.ResponseWriter, r *http.Request) {
	matricula := mux.Vars(r)["matricula"]

	var req nivelAcessoLegadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido", nil)
		return
	}

	n := req.toModel()
	if err := h.Niveis.AtualizarLegado(h.DB, matricula, &n); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar nível de acesso", err)
		return
	}
	utils.RespondMensagem(w, http.StatusOK, true, "Nível de acesso atualizado com sucesso")
}
