package nivelacesso

import "strings"

// Permissoes é o conjunto fixo de capacidades de compra de um nível.
type Permissoes struct {
	CompraImpeditivos   bool `json:"compra_impeditivos"`
	CompraConsumo       bool `json:"compra_consumo"`
	CompraEstoque       bool `json:"compra_estoque"`
	CompraLocais        bool `json:"compra_locais"`
	CompraInvestimentos bool `json:"compra_investimentos"`
	CompraAlojamentos   bool `json:"compra_alojamentos"`
	CompraSupermercados bool `json:"compra_supermercados"`
	AprovaSolicitacao   bool `json:"aprova_solicitacao"`
}

// Nivel agrupa a etiqueta do nível, sua descrição e o pacote de permissões.
type Nivel struct {
	Nivel      string     `json:"nivel"`
	Descricao  string     `json:"descricao"`
	Permissoes Permissoes `json:"permissoes"`
}

// Os quatro níveis são fixos; qualquer alteração passa por código, não por
// dados.
var niveis = map[string]Nivel{
	"verde": {
		Nivel:     "verde",
		Descricao: "Gerência / Diretoria",
		Permissoes: Permissoes{
			CompraImpeditivos:   true,
			CompraConsumo:       true,
			CompraEstoque:       true,
			CompraLocais:        true,
			CompraInvestimentos: true,
			CompraAlojamentos:   true,
			CompraSupermercados: true,
			AprovaSolicitacao:   true,
		},
	},
	"azul": {
		Nivel:     "azul",
		Descricao: "Supervisão / Segurança",
		Permissoes: Permissoes{
			CompraImpeditivos:   true,
			CompraConsumo:       true,
			CompraEstoque:       true,
			CompraLocais:        true,
			CompraInvestimentos: true,
			AprovaSolicitacao:   true,
		},
	},
	"marrom": {
		Nivel:     "marrom",
		Descricao: "Coordenação",
		Permissoes: Permissoes{
			CompraImpeditivos:   true,
			CompraConsumo:       true,
			CompraEstoque:       true,
			CompraLocais:        true,
			CompraSupermercados: true,
			AprovaSolicitacao:   true,
		},
	},
	"amarelo": {
		Nivel:     "amarelo",
		Descricao: "Levantador / Encarregado",
		Permissoes: Permissoes{
			CompraImpeditivos: true,
			CompraConsumo:     true,
			CompraEstoque:     true,
		},
	},
}

var cargoParaNivel = map[string]string{
	"administrador": "verde",
	"diretor":       "verde",
	"diretoria":     "verde",
	"gerente":       "verde",
	"supervisor":    "azul",
	"segurança":     "azul",
	"coordenador":   "marrom",
	"coordenação":   "marrom",
	"comprador":     "amarelo",
	"levantador":    "amarelo",
	"encarregado":   "amarelo",
}

// PermissoesPorNivel retorna o pacote do nível informado, ou nil para
// etiquetas fora do conjunto verde/azul/marrom/amarelo.
func PermissoesPorNivel(nivel string) *Nivel {
	if n, ok := niveis[strings.ToLower(nivel)]; ok {
		return &n
	}
	return nil
}

// NivelPorCargo infere o nível a partir do cargo; cargos desconhecidos caem
// no nível mais baixo (amarelo).
func NivelPorCargo(cargo string) *Nivel {
	nivel, ok := cargoParaNivel[strings.ToLower(cargo)]
	if !ok {
		nivel = "amarelo"
	}
	return PermissoesPorNivel(nivel)
}
