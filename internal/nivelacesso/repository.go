package nivelacesso

import (
	"errors"

	"github.com/sisdineng/api-compras/internal/config"
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorMatricula(db *gorm.DB, matricula string) (*NivelAcesso, error)
	// Gravar faz upsert do nível resolvido para a matrícula, no formato de
	// esquema configurado na inicialização.
	Gravar(db *gorm.DB, matricula string, nivel *Nivel) error
	// CriarLegado e AtualizarLegado atendem o CRUD direto sobre o esquema
	// de colunas, independente da derivação de pacotes.
	CriarLegado(db *gorm.DB, n *NivelAcesso) error
	AtualizarLegado(db *gorm.DB, matricula string, n *NivelAcesso) error
	ListarTodos(db *gorm.DB) ([]NivelAcesso, error)
}

type repositoryImpl struct {
	esquema config.EsquemaNivelAcesso
}

func NewRepository(esquema config.EsquemaNivelAcesso) Repository {
	return &repositoryImpl{esquema: esquema}
}

func (r *repositoryImpl) BuscarPorMatricula(db *gorm.DB, matricula string) (*NivelAcesso, error) {
	var n NivelAcesso
	err := db.Where("mat_funcionario = ?", matricula).First(&n).Error
	return &n, err
}

func (r *repositoryImpl) Gravar(db *gorm.DB, matricula string, nivel *Nivel) error {
	registro := NivelAcesso{
		MatFuncionario: matricula,
		Nivel:          nivel.Nivel,
		Descricao:      nivel.Descricao,
	}
	if r.esquema == config.EsquemaJSON {
		p := nivel.Permissoes
		registro.Permissoes = &p
	} else {
		registro.CompraImpeditivos = nivel.Permissoes.CompraImpeditivos
		registro.CompraConsumo = nivel.Permissoes.CompraConsumo
		registro.CompraEstoque = nivel.Permissoes.CompraEstoque
		registro.CompraLocais = nivel.Permissoes.CompraLocais
		registro.CompraInvestimentos = nivel.Permissoes.CompraInvestimentos
		registro.CompraAlojamentos = nivel.Permissoes.CompraAlojamentos
		registro.CompraSupermercados = nivel.Permissoes.CompraSupermercados
		registro.AprovaSolicitacao = nivel.Permissoes.AprovaSolicitacao
	}

	existente, err := r.BuscarPorMatricula(db, matricula)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&registro).Error
	}
	if err != nil {
		return err
	}

	registro.ID = existente.ID
	return db.Save(&registro).Error
}

func (r *repositoryImpl) CriarLegado(db *gorm.DB, n *NivelAcesso) error {
	return db.Create(n).Error
}

func (r *repositoryImpl) AtualizarLegado(db *gorm.DB, matricula string, n *NivelAcesso) error {
	return db.Model(&NivelAcesso{}).Where("mat_funcionario = ?", matricula).
		Updates(map[string]interface{}{
			"descricao":            n.Descricao,
			"compra_impeditivos":   n.CompraImpeditivos,
			"compra_consumo":       n.CompraConsumo,
			"compra_estoque":       n.CompraEstoque,
			"compra_locais":        n.CompraLocais,
			"compra_investimentos": n.CompraInvestimentos,
			"compra_alojamentos":   n.CompraAlojamentos,
			"compra_supermercados": n.CompraSupermercados,
			"aprova_solicitacao":   n.AprovaSolicitacao,
		}).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]NivelAcesso, error) {
	var lista []NivelAcesso
	err := db.Find(&lista).Error
	return lista, err
}
