package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token de acesso emitido no login.
type Claims struct {
	FuncionarioID uint   `json:"funcionarioId"`
	Nivel         string `json:"nivel"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token
const AccessTTL = 8 * time.Hour

func secret() []byte {
	if s := os.Getenv("AUTH_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("devauthsecret")
}

// GerarToken emite um JWT HS256 para o funcionário autenticado.
func GerarToken(funcionarioID uint, nivel string) (string, error) {
	now := time.Now()
	claims := &Claims{
		FuncionarioID: funcionarioID,
		Nivel:         nivel,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(funcionarioID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ParseAndValidate valida assinatura e expiração.
func ParseAndValidate(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token inválido")
	}

	c, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}
	return c, nil
}
