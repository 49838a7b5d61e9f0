package utils

import (
	"encoding/json"
	"net/http"
)

var exporErros = true

// ConfigurarAmbiente define se detalhes de erro aparecem nas respostas 500.
// Em produção o campo "error" é omitido.
func ConfigurarAmbiente(producao bool) {
	exporErros = !producao
}

// RespondJSON serializa o payload com o status informado.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondMensagem responde o envelope padrão {success, message}.
func RespondMensagem(w http.ResponseWriter, status int, success bool, mensagem string) {
	RespondJSON(w, status, map[string]interface{}{
		"success": success,
		"message": mensagem,
	})
}

// RespondErro responde uma falha; o erro subjacente só é exposto fora de produção.
func RespondErro(w http.ResponseWriter, status int, mensagem string, err error) {
	body := map[string]interface{}{
		"success": false,
		"message": mensagem,
	}
	if err != nil && exporErros {
		body["error"] = err.Error()
	}
	RespondJSON(w, status, body)
}
