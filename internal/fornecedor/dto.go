package fornecedor

// FornecedorDTO é o formato exposto ao cliente, com os nomes de campo
// esperados pelo frontend.
type FornecedorDTO struct {
	ID          uint   `json:"id"`
	Nome        string `json:"nome"`
	Categoria   string `json:"categoria"`
	Contato     string `json:"contato"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
	Endereco    string `json:"endereco"`
	CNPJ        string `json:"cnpj"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	CEP         string `json:"cep"`
	Observacoes string `json:"observacoes"`
}

func toDTO(f Fornecedor) FornecedorDTO {
	return FornecedorDTO{
		ID:          f.ID,
		Nome:        f.NomeFornecedor,
		Categoria:   f.Categoria,
		Contato:     f.Contato,
		Telefone:    f.Telefone,
		Email:       f.Email,
		Endereco:    f.Endereco,
		CNPJ:        f.CNPJ,
		Cidade:      f.Cidade,
		Estado:      f.Estado,
		CEP:         f.CEP,
		Observacoes: f.Observacoes,
	}
}

func toDTOs(list []Fornecedor) []FornecedorDTO {
	out := make([]FornecedorDTO, 0, len(list))
	for _, f := range list {
		out = append(out, toDTO(f))
	}
	return out
}

func (d FornecedorDTO) toModel() Fornecedor {
	return Fornecedor{
		NomeFornecedor: d.Nome,
		Categoria:      d.Categoria,
		Contato:        d.Contato,
		Telefone:       d.Telefone,
		Email:          d.Email,
		Endereco:       d.Endereco,
		CNPJ:           d.CNPJ,
		Cidade:         d.Cidade,
		Estado:         d.Estado,
		CEP:            d.CEP,
		Observacoes:    d.Observacoes,
	}
}
