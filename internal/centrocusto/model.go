package centrocusto

// CentroCusto é identificado externamente pelo código de negócio id_cc,
// distinto da chave primária numérica.
type CentroCusto struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	IDCC      string `gorm:"column:id_cc" json:"id_cc"`
	Descricao string `json:"descricao"`
	Ativo     bool   `json:"ativo"`
}

func (CentroCusto) TableName() string { return "compra_centro_custo" }
