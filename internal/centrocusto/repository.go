package centrocusto

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	ListarTodos(db *gorm.DB) ([]CentroCusto, error)
	BuscarPorCodigo(db *gorm.DB, idCC string) (*CentroCusto, error)
	ExisteCodigo(db *gorm.DB, idCC string) (bool, error)
	Criar(db *gorm.DB, c *CentroCusto) error
	Atualizar(db *gorm.DB, idCC string, descricao string, ativo bool) error
	// Deletar informa quantas linhas saíram para o handler distinguir 404.
	Deletar(db *gorm.DB, idCC string) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]CentroCusto, error) {
	var lista []CentroCusto
	err := db.Order("id_cc").Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) BuscarPorCodigo(db *gorm.DB, idCC string) (*CentroCusto, error) {
	var c CentroCusto
	err := db.Where("id_cc = ?", idCC).First(&c).Error
	return &c, err
}

func (r *repositoryImpl) ExisteCodigo(db *gorm.DB, idCC string) (bool, error) {
	var c CentroCusto
	err := db.Select("id").Where("id_cc = ?", idCC).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *CentroCusto) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, idCC string, descricao string, ativo bool) error {
	return db.Model(&CentroCusto{}).Where("id_cc = ?", idCC).
		Updates(map[string]interface{}{
			"descricao": descricao,
			"ativo":     ativo,
		}).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, idCC string) (int64, error) {
	result := db.Where("id_cc = ?", idCC).Delete(&CentroCusto{})
	return result.RowsAffected, result.Error
}
