package funcionario

// Funcionario é a conta de um empregado. O vínculo com o nível de acesso é
// feito pela matrícula, não pela chave primária.
type Funcionario struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	Cargo        string `json:"cargo"`
	Status       bool   `gorm:"column:status" json:"ativo"`
	Departamento string `json:"departamento"`
	Senha        string `json:"-"`
	Matricula    string `json:"matricula"`
}

func (Funcionario) TableName() string { return "tb_funcionarios" }
