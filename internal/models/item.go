package models

// Item é uma linha de uma solicitação de compra.
type Item struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Descricao     string `json:"descricao"`
	Quantidade    int    `json:"quantidade"`
	SolicitacaoID uint   `json:"solicitacao_id"`
	IDSolicitante uint   `gorm:"column:id_solicitante" json:"id_solicitante"`
}

func (Item) TableName() string { return "compra_tb_itens" }
