package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	token, err := GerarToken(42, "verde")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.FuncionarioID)
	assert.Equal(t, "verde", claims.Nivel)
}

func TestParseAndValidateRejeitaTokenAdulterado(t *testing.T) {
	token, err := GerarToken(1, "amarelo")
	require.NoError(t, err)

	_, err = ParseAndValidate(token + "x")
	assert.Error(t, err)

	_, err = ParseAndValidate("não é um token")
	assert.Error(t, err)
}
