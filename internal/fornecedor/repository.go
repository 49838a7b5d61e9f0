package fornecedor

import "gorm.io/gorm"

type Repository interface {
	ListarTodos(db *gorm.DB) ([]Fornecedor, error)
	BuscarPorID(db *gorm.DB, id uint) (*Fornecedor, error)
	Criar(db *gorm.DB, f *Fornecedor) error
	Atualizar(db *gorm.DB, id uint, dados *Fornecedor) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Fornecedor, error) {
	var fornecedores []Fornecedor
	err := db.Find(&fornecedores).Error
	return fornecedores, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Fornecedor, error) {
	var f Fornecedor
	err := db.First(&f, id).Error
	return &f, err
}

func (r *repositoryImpl) Criar(db *gorm.DB, f *Fornecedor) error {
	return db.Create(f).Error
}

// Atualizar não confere existência antes de gravar, espelhando o
// comportamento do cadastro legado.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, dados *Fornecedor) error {
	return db.Model(&Fornecedor{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nome_fornecedor": dados.NomeFornecedor,
		"cnpj":            dados.CNPJ,
		"Categoria":       dados.Categoria,
		"contato":         dados.Contato,
		"telefone":        dados.Telefone,
		"email":           dados.Email,
		"endereco":        dados.Endereco,
		"cidade":          dados.Cidade,
		"estado":          dados.Estado,
		"cep":             dados.CEP,
		"observacoes":     dados.Observacoes,
	}).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Fornecedor{}, id).Error
}
