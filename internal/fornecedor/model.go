package fornecedor

// Fornecedor mantém os nomes de coluna legados da tabela de compras;
// o contrato com o cliente usa os nomes do DTO.
type Fornecedor struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	NomeFornecedor string `gorm:"column:nome_fornecedor" json:"-"`
	CNPJ           string `gorm:"column:cnpj" json:"-"`
	Categoria      string `gorm:"column:Categoria" json:"-"`
	Contato        string `json:"-"`
	Telefone       string `json:"-"`
	Email          string `json:"-"`
	Endereco       string `json:"-"`
	Cidade         string `json:"-"`
	Estado         string `json:"-"`
	CEP            string `gorm:"column:cep" json:"-"`
	Observacoes    string `json:"-"`
}

func (Fornecedor) TableName() string { return "compra_tb_fornecedor" }
