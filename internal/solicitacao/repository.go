package solicitacao

import (
	"github.com/sisdineng/api-compras/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	ListarTodas(db *gorm.DB) ([]Solicitacao, error)
	ListarPorStatus(db *gorm.DB, statuses ...string) ([]Solicitacao, error)
	BuscarPorID(db *gorm.DB, id uint) (*Solicitacao, error)
	Criar(db *gorm.DB, s *Solicitacao) error
	CriarItem(db *gorm.DB, item *models.Item) error
	ListarItens(db *gorm.DB, solicitacaoID uint) ([]models.Item, error)
	Atualizar(db *gorm.DB, s *Solicitacao) error
	AtualizarStatus(db *gorm.DB, id uint, status string) error
	AtualizarStatusSe(db *gorm.DB, id uint, de, para string) error
	ListarCotacoes(db *gorm.DB, solicitacaoID uint) ([]models.Cotacao, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Solicitacao, error) {
	var lista []Solicitacao
	err := db.Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) ListarPorStatus(db *gorm.DB, statuses ...string) ([]Solicitacao, error) {
	var lista []Solicitacao
	err := db.Where("status IN ?", statuses).Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Solicitacao, error) {
	var s Solicitacao
	err := db.First(&s, id).Error
	return &s, err
}

func (r *repositoryImpl) Criar(db *gorm.DB, s *Solicitacao) error {
	return db.Create(s).Error
}

func (r *repositoryImpl) CriarItem(db *gorm.DB, item *models.Item) error {
	return db.Create(item).Error
}

func (r *repositoryImpl) ListarItens(db *gorm.DB, solicitacaoID uint) ([]models.Item, error) {
	var itens []models.Item
	err := db.Where("solicitacao_id = ?", solicitacaoID).Find(&itens).Error
	return itens, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, s *Solicitacao) error {
	return db.Save(s).Error
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	return db.Model(&Solicitacao{}).Where("id = ?", id).
		Update("status", status).Error
}

// AtualizarStatusSe só grava quando o status atual é o esperado; a
// transição é um no-op para qualquer outro estado.
func (r *repositoryImpl) AtualizarStatusSe(db *gorm.DB, id uint, de, para string) error {
	return db.Model(&Solicitacao{}).Where("id = ? AND status = ?", id, de).
		Update("status", para).Error
}

func (r *repositoryImpl) ListarCotacoes(db *gorm.DB, solicitacaoID uint) ([]models.Cotacao, error) {
	var cotacoes []models.Cotacao
	err := db.Where("solicitacao_id = ?", solicitacaoID).Find(&cotacoes).Error
	return cotacoes, err
}
