package aprovacao

// Etapas do fluxo de compra que geram registro de aprovação.
const (
	EtapaSolicitacao = "Solicitação"
	EtapaCotacao     = "Cotação"
)

// Aprovacao registra uma decisão tomada em uma etapa do fluxo.
type Aprovacao struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	SolicitacaoID  uint    `json:"solicitacao_id"`
	Etapa          string  `json:"etapa"`
	Status         string  `json:"status"`
	AprovadoPor    string  `json:"aprovado_por"`
	NivelAprovacao int     `json:"nivel_aprovacao"`
	MotivoRejeicao *string `json:"motivo_rejeicao"`
	DataAprovacao  string  `json:"data_aprovacao"`
}

func (Aprovacao) TableName() string { return "aprovacoes" }
