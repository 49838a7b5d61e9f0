package cotacao

import (
	"fmt"

	"github.com/sisdineng/api-compras/internal/models"
)

type itemCotacaoRequest struct {
	ItemID           uint    `json:"itemId"`
	Price            float64 `json:"price"`
	Quantity         int     `json:"quantity"`
	PaymentCondition string  `json:"paymentCondition"`
	Parcelas         int     `json:"parcelas"`
	TipoPagamento    string  `json:"tipo_pagamento"`
}

type fornecedorCotacaoRequest struct {
	ID    uint                 `json:"id"`
	Items []itemCotacaoRequest `json:"items"`
}

type criarCotacoesRequest struct {
	RequestID uint                       `json:"requestId"`
	Suppliers []fornecedorCotacaoRequest `json:"suppliers"`
}

type atualizarStatusRequest struct {
	Status        string `json:"status"`
	ApprovedBy    string `json:"approvedBy"`
	ApprovalLevel int    `json:"approvalLevel"`
}

type itemSelecionadoDTO struct {
	SupplierID uint    `json:"supplierId"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type finalizarRequest struct {
	SelectedItems []itemSelecionadoDTO `json:"selectedItems"`
	ApprovedBy    string               `json:"approvedBy"`
	ApprovalLevel int                  `json:"approvalLevel"`
}

type itemCotadoDTO struct {
	ID               uint    `json:"id"`
	ItemName         string  `json:"itemName"`
	Quantity         int     `json:"quantity"`
	Price            float64 `json:"price"`
	SupplierID       uint    `json:"supplierId"`
	TotalValue       float64 `json:"totalValue"`
	PaymentCondition string  `json:"paymentCondition"`
	Parcelas         int     `json:"parcelas"`
	Status           string  `json:"status"`
}

type cotacaoPorFornecedorDTO struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Condicoes string          `json:"condicoes"`
	Parcelas  int             `json:"parcelas"`
	Items     []itemCotadoDTO `json:"items"`
}

// agruparPorFornecedor monta um registro por fornecedor com a lista de
// itens cotados, preservando a ordem das linhas consultadas.
func agruparPorFornecedor(cotacoes []models.Cotacao) []cotacaoPorFornecedorDTO {
	indice := make(map[uint]int)
	resultado := make([]cotacaoPorFornecedorDTO, 0)

	for _, c := range cotacoes {
		pos, ok := indice[c.FornecedorID]
		if !ok {
			nome := ""
			if c.Fornecedor != nil {
				nome = c.Fornecedor.NomeFornecedor
			}
			if nome == "" {
				nome = fmt.Sprintf("Fornecedor %d", c.FornecedorID)
			}
			resultado = append(resultado, cotacaoPorFornecedorDTO{
				ID:        c.FornecedorID,
				Name:      nome,
				Condicoes: c.Condicoes,
				Parcelas:  c.Parcelas,
				Items:     []itemCotadoDTO{},
			})
			pos = len(resultado) - 1
			indice[c.FornecedorID] = pos
		}

		item := itemCotadoDTO{
			ID:               c.ItemID,
			ItemName:         fmt.Sprintf("Item %d", c.ItemID),
			Quantity:         c.Quantidade,
			Price:            c.Preco,
			SupplierID:       c.FornecedorID,
			TotalValue:       c.ValorTotal,
			PaymentCondition: c.Condicoes,
			Parcelas:         c.Parcelas,
			Status:           c.Status,
		}
		if c.Item != nil && c.Item.Descricao != "" {
			item.ItemName = c.Item.Descricao
		}
		if item.PaymentCondition == "" {
			item.PaymentCondition = "À vista"
		}
		resultado[pos].Items = append(resultado[pos].Items, item)
	}

	return resultado
}
