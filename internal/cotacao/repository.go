package cotacao

import (
	"errors"

	"github.com/sisdineng/api-compras/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	ListarTodas(db *gorm.DB) ([]models.Cotacao, error)
	ListarPorSolicitacao(db *gorm.DB, solicitacaoID uint) ([]models.Cotacao, error)
	BuscarPorID(db *gorm.DB, id uint) (*models.Cotacao, error)
	Existe(db *gorm.DB, solicitacaoID, itemID, fornecedorID uint) (bool, error)
	Criar(db *gorm.DB, c *models.Cotacao) error
	AtualizarStatus(db *gorm.DB, id uint, status, aprovadoPor string, nivel int) error
	AprovarPorFornecedor(db *gorm.DB, solicitacaoID, fornecedorID uint) error
	RejeitarRestantes(db *gorm.DB, solicitacaoID uint, fornecedorIDs []uint) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]models.Cotacao, error) {
	var lista []models.Cotacao
	err := db.Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) ListarPorSolicitacao(db *gorm.DB, solicitacaoID uint) ([]models.Cotacao, error) {
	var lista []models.Cotacao
	err := db.Where("solicitacao_id = ?", solicitacaoID).
		Preload("Fornecedor").
		Preload("Item").
		Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*models.Cotacao, error) {
	var c models.Cotacao
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) Existe(db *gorm.DB, solicitacaoID, itemID, fornecedorID uint) (bool, error) {
	var c models.Cotacao
	err := db.Select("id").
		Where("solicitacao_id = ? AND item_id = ? AND fornecedor_id = ?",
			solicitacaoID, itemID, fornecedorID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *models.Cotacao) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status, aprovadoPor string, nivel int) error {
	updates := map[string]interface{}{"status": status}
	if aprovadoPor != "" {
		updates["aprovado_por"] = aprovadoPor
	}
	if nivel != 0 {
		updates["nivel_aprovacao"] = nivel
	}
	return db.Model(&models.Cotacao{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repositoryImpl) AprovarPorFornecedor(db *gorm.DB, solicitacaoID, fornecedorID uint) error {
	return db.Model(&models.Cotacao{}).
		Where("solicitacao_id = ? AND fornecedor_id = ?", solicitacaoID, fornecedorID).
		Update("status", StatusAprovada).Error
}

func (r *repositoryImpl) RejeitarRestantes(db *gorm.DB, solicitacaoID uint, fornecedorIDs []uint) error {
	return db.Model(&models.Cotacao{}).
		Where("solicitacao_id = ? AND status = ? AND fornecedor_id NOT IN ?",
			solicitacaoID, StatusEmCotacao, fornecedorIDs).
		Update("status", StatusRejeitada).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&models.Cotacao{}, id).Error
}
