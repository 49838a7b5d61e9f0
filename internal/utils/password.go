package utils

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// VerificarSenha compara a senha informada com o valor armazenado.
// A base legada guarda senhas em texto puro; registros já migrados carregam
// hash bcrypt e são reconhecidos pelo prefixo.
func VerificarSenha(armazenada, informada string) bool {
	if strings.HasPrefix(armazenada, "$2a$") ||
		strings.HasPrefix(armazenada, "$2b$") ||
		strings.HasPrefix(armazenada, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(armazenada), []byte(informada)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(armazenada), []byte(informada)) == 1
}
