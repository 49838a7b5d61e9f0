package funcionario

import "github.com/sisdineng/api-compras/internal/nivelacesso"

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type alterarSenhaRequest struct {
	SenhaAtual string `json:"senhaAtual"`
	NovaSenha  string `json:"novaSenha"`
}

// O frontend legado envia ora "status" (1/0 ou booleano), ora "ativo".
type criarFuncionarioRequest struct {
	Nome         string      `json:"nome"`
	Email        string      `json:"email"`
	Cargo        string      `json:"cargo"`
	Departamento string      `json:"departamento"`
	Senha        string      `json:"senha"`
	Matricula    string      `json:"matricula"`
	NivelAcesso  string      `json:"nivelAcesso"`
	Status       interface{} `json:"status"`
	Ativo        *bool       `json:"ativo"`
}

type statusFuncionarioRequest struct {
	Ativo  *bool       `json:"ativo"`
	Status interface{} `json:"status"`
}

type nivelAcessoLegadoRequest struct {
	Matricula           string `json:"matricula"`
	Descricao           string `json:"descricao"`
	CompraImpeditivos   bool   `json:"compra_impeditivos"`
	CompraConsumo       bool   `json:"compra_consumo"`
	CompraEstoque       bool   `json:"compra_estoque"`
	CompraLocais        bool   `json:"compra_locais"`
	CompraInvestimentos bool   `json:"compra_investimentos"`
	CompraAlojamentos   bool   `json:"compra_alojamentos"`
	CompraSupermercados bool   `json:"compra_supermercados"`
	AprovaSolicitacao   bool   `json:"aprova_solicitacao"`
}

func (r nivelAcessoLegadoRequest) toModel() nivelacesso.NivelAcesso {
	return nivelacesso.NivelAcesso{
		MatFuncionario:      r.Matricula,
		Descricao:           r.Descricao,
		CompraImpeditivos:   r.CompraImpeditivos,
		CompraConsumo:       r.CompraConsumo,
		CompraEstoque:       r.CompraEstoque,
		CompraLocais:        r.CompraLocais,
		CompraInvestimentos: r.CompraInvestimentos,
		CompraAlojamentos:   r.CompraAlojamentos,
		CompraSupermercados: r.CompraSupermercados,
		AprovaSolicitacao:   r.AprovaSolicitacao,
	}
}

// funcionarioComNivel é a linha do funcionário com o nível de acesso
// achatado, como o frontend espera.
type funcionarioComNivel struct {
	ID           uint    `json:"id"`
	Nome         string  `json:"nome"`
	Email        string  `json:"email"`
	Cargo        string  `json:"cargo"`
	Ativo        bool    `json:"ativo"`
	Departamento string  `json:"departamento"`
	Matricula    string  `json:"matricula"`
	NivelAcesso  *string `json:"nivel_acesso"`
	Nivel        *string `json:"nivel"`
	*nivelacesso.Permissoes
}

func montarComNivel(f Funcionario, n *nivelacesso.NivelAcesso) funcionarioComNivel {
	out := funcionarioComNivel{
		ID:           f.ID,
		Nome:         f.Nome,
		Email:        f.Email,
		Cargo:        f.Cargo,
		Ativo:        f.Status,
		Departamento: f.Departamento,
		Matricula:    f.Matricula,
	}
	if n != nil {
		out.NivelAcesso = &n.Descricao
		out.Nivel = &n.Nivel
		p := n.Pacote()
		out.Permissoes = &p
	}
	return out
}

// resolverAtivo reproduz a precedência do frontend legado: "status" vale
// quando presente (aceitando 1/0 ou booleano), senão "ativo", senão ativo.
func resolverAtivo(status interface{}, ativo *bool, padrao bool) bool {
	switch v := status.(type) {
	case bool:
		return v
	case float64:
		return v == 1
	}
	if ativo != nil {
		return *ativo
	}
	return padrao
}
