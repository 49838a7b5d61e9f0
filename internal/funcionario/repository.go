package funcionario

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	ListarTodos(db *gorm.DB) ([]Funcionario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Funcionario, error)
	BuscarAtivoPorEmail(db *gorm.DB, email string) (*Funcionario, error)
	ExisteEmailOuMatricula(db *gorm.DB, email, matricula string) (bool, error)
	Criar(db *gorm.DB, f *Funcionario) error
	Atualizar(db *gorm.DB, id uint, f *Funcionario, trocarSenha bool) error
	AtualizarSenha(db *gorm.DB, id uint, senha string) error
	AtualizarStatus(db *gorm.DB, id uint, ativo bool) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Funcionario, error) {
	var lista []Funcionario
	err := db.Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Funcionario, error) {
	var f Funcionario
	err := db.First(&f, id).Error
	return &f, err
}

func (r *repositoryImpl) BuscarAtivoPorEmail(db *gorm.DB, email string) (*Funcionario, error) {
	var f Funcionario
	err := db.Where("email = ? AND status = ?", email, true).First(&f).Error
	return &f, err
}

func (r *repositoryImpl) ExisteEmailOuMatricula(db *gorm.DB, email, matricula string) (bool, error) {
	var f Funcionario
	err := db.Select("id").
		Where("email = ? OR matricula = ?", email, matricula).
		First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, f *Funcionario) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, f *Funcionario, trocarSenha bool) error {
	updates := map[string]interface{}{
		"nome":         f.Nome,
		"email":        f.Email,
		"cargo":        f.Cargo,
		"status":       f.Status,
		"departamento": f.Departamento,
		"matricula":    f.Matricula,
	}
	if trocarSenha {
		updates["senha"] = f.Senha
	}
	return db.Model(&Funcionario{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repositoryImpl) AtualizarSenha(db *gorm.DB, id uint, senha string) error {
	return db.Model(&Funcionario{}).Where("id = ?", id).Update("senha", senha).Error
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, ativo bool) error {
	return db.Model(&Funcionario{}).Where("id = ?", id).Update("status", ativo).Error
}
