package aprovacao

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	// Upsert grava a decisão da etapa, mantendo no máximo um registro por
	// (solicitação, etapa).
	Upsert(db *gorm.DB, a *Aprovacao) error
	// Inserir sempre acrescenta um registro novo (trilha de auditoria).
	Inserir(db *gorm.DB, a *Aprovacao) error
	ListarPorSolicitacao(db *gorm.DB, solicitacaoID uint) ([]Aprovacao, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Upsert(db *gorm.DB, a *Aprovacao) error {
	var existente Aprovacao
	err := db.Where("solicitacao_id = ? AND etapa = ?", a.SolicitacaoID, a.Etapa).
		First(&existente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(a).Error
	}
	if err != nil {
		return err
	}

	// O filtro repete a etapa para nunca sobrescrever a decisão de outra
	// etapa da mesma solicitação.
	return db.Model(&Aprovacao{}).
		Where("solicitacao_id = ? AND etapa = ?", a.SolicitacaoID, a.Etapa).
		Updates(map[string]interface{}{
			"status":          a.Status,
			"aprovado_por":    a.AprovadoPor,
			"nivel_aprovacao": a.NivelAprovacao,
			"motivo_rejeicao": a.MotivoRejeicao,
			"data_aprovacao":  a.DataAprovacao,
		}).Error
}

func (r *repositoryImpl) Inserir(db *gorm.DB, a *Aprovacao) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) ListarPorSolicitacao(db *gorm.DB, solicitacaoID uint) ([]Aprovacao, error) {
	var lista []Aprovacao
	err := db.Where("solicitacao_id = ?", solicitacaoID).Find(&lista).Error
	return lista, err
}
