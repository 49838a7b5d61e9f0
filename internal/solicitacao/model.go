package solicitacao

// Status possíveis de uma solicitação de compra. O fluxo normal é
// Solicitado → Aprovado → Em Cotação → Aprovado para Compra.
const (
	StatusSolicitado         = "Solicitado"
	StatusAprovado           = "Aprovado"
	StatusEmCotacao          = "Em Cotação"
	StatusAprovadoParaCompra = "Aprovado para Compra"
)

// Solicitacao representa um pedido de compra aberto por um funcionário.
type Solicitacao struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	NomeSolicitante string `json:"nome_solicitante"`
	Aplicacao       string `json:"aplicacao"`
	CentroCusto     string `json:"centro_custo"`
	DataSolicitacao string `json:"data_solicitacao"`
	LocalEntrega    string `json:"local_entrega"`
	PrazoEntrega    string `json:"prazo_entrega"`
	Categoria       string `json:"categoria"`
	Motivo          string `json:"motivo"`
	Prioridade      string `json:"prioridade"`
	Status          string `json:"status"`
}

func (Solicitacao) TableName() string { return "compra_solicitacao" }
