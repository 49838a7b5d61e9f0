package cotacao

// Status possíveis de uma cotação.
const (
	StatusEmCotacao = "Em Cotação"
	StatusAprovada  = "Aprovada"
	StatusRejeitada = "Rejeitada"
)
