package models

import "github.com/sisdineng/api-compras/internal/fornecedor"

// Cotacao é a oferta de um fornecedor para um item de uma solicitação.
// O fornecedor é referenciado por chave estrangeira; o vínculo legado por
// nome foi aposentado na migração de dados.
type Cotacao struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	SolicitacaoID  uint    `json:"solicitacao_id"`
	ItemID         uint    `gorm:"column:item_id" json:"item_id"`
	FornecedorID   uint    `json:"fornecedor_id"`
	Preco          float64 `json:"preco"`
	Quantidade     int     `json:"quantidade"`
	ValorTotal     float64 `json:"valor_total"`
	Condicoes      string  `json:"condicoes"`
	Status         string  `json:"status"`
	Parcelas       int     `json:"parcelas"`
	TipoPagamento  string  `json:"tipo_pagamento"`
	AprovadoPor    string  `json:"aprovado_por,omitempty"`
	NivelAprovacao int     `json:"nivel_aprovacao,omitempty"`

	Fornecedor *fornecedor.Fornecedor `gorm:"foreignKey:FornecedorID" json:"-"`
	Item       *Item                  `gorm:"foreignKey:ItemID" json:"-"`
}

func (Cotacao) TableName() string { return "compra_cotacao" }
