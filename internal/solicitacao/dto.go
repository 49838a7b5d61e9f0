package solicitacao

import (
	"github.com/sisdineng/api-compras/internal/aprovacao"
	"github.com/sisdineng/api-compras/internal/models"
)

type dadosSolicitacaoDTO struct {
	RequesterName    string `json:"requesterName"`
	Application      string `json:"application"`
	CostCenter       string `json:"costCenter"`
	DeliveryLocation string `json:"deliveryLocation"`
	DeliveryDeadline string `json:"deliveryDeadline"`
	Category         string `json:"category"`
	Reason           string `json:"reason"`
	Priority         string `json:"priority"`
}

type itemDTO struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

type criarSolicitacaoRequest struct {
	RequestData dadosSolicitacaoDTO `json:"requestData"`
	Items       []itemDTO           `json:"items"`
}

// Campos omitidos no patch preservam o valor atual.
type atualizarSolicitacaoRequest struct {
	Aplicacao    *string `json:"aplicacao"`
	Motivo       *string `json:"motivo"`
	Prioridade   *string `json:"prioridade"`
	PrazoEntrega *string `json:"prazo_entrega"`
	LocalEntrega *string `json:"local_entrega"`
}

type dadosAprovacaoDTO struct {
	Etapa          string  `json:"etapa"`
	Status         string  `json:"status"`
	AprovadoPor    string  `json:"aprovado_por"`
	NivelAprovacao int     `json:"nivel_aprovacao"`
	MotivoRejeicao *string `json:"motivo_rejeicao"`
}

type atualizarStatusRequest struct {
	Status       string             `json:"status"`
	ApprovalData *dadosAprovacaoDTO `json:"approvalData"`
}

type detalheSolicitacaoResponse struct {
	Solicitacao
	Items     []models.Item         `json:"items"`
	Approvals []aprovacao.Aprovacao `json:"approvals"`
	Quotes    []models.Cotacao      `json:"quotes"`
}
