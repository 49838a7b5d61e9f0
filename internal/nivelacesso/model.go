package nivelacesso

// NivelAcesso é o registro persistido por matrícula. A tabela convive com
// dois formatos de gravação: colunas booleanas discretas (legado) ou o blob
// JSON em permissoes; o formato ativo é decidido na inicialização.
type NivelAcesso struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	MatFuncionario string `gorm:"column:mat_funcionario" json:"mat_funcionario"`
	Nivel          string `json:"nivel"`
	Descricao      string `json:"descricao"`

	CompraImpeditivos   bool `json:"compra_impeditivos"`
	CompraConsumo       bool `json:"compra_consumo"`
	CompraEstoque       bool `json:"compra_estoque"`
	CompraLocais        bool `json:"compra_locais"`
	CompraInvestimentos bool `json:"compra_investimentos"`
	CompraAlojamentos   bool `json:"compra_alojamentos"`
	CompraSupermercados bool `json:"compra_supermercados"`
	AprovaSolicitacao   bool `json:"aprova_solicitacao"`

	Permissoes *Permissoes `gorm:"serializer:json" json:"permissoes,omitempty"`
}

func (NivelAcesso) TableName() string { return "nivel_acesso" }

// Pacote devolve as permissões efetivas do registro, seja qual for o
// formato em que foram gravadas.
func (n *NivelAcesso) Pacote() Permissoes {
	if n.Permissoes != nil {
		return *n.Permissoes
	}
	return Permissoes{
		CompraImpeditivos:   n.CompraImpeditivos,
		CompraConsumo:       n.CompraConsumo,
		CompraEstoque:       n.CompraEstoque,
		CompraLocais:        n.CompraLocais,
		CompraInvestimentos: n.CompraInvestimentos,
		CompraAlojamentos:   n.CompraAlojamentos,
		CompraSupermercados: n.CompraSupermercados,
		AprovaSolicitacao:   n.AprovaSolicitacao,
	}
}
