package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EsquemaNivelAcesso indica o formato de gravação da tabela nivel_acesso.
// Resolvido uma única vez na inicialização; nunca sondado por requisição.
type EsquemaNivelAcesso string

const (
	// EsquemaColunas grava as permissões em colunas booleanas discretas.
	EsquemaColunas EsquemaNivelAcesso = "colunas"
	// EsquemaJSON grava as permissões como um blob JSON na coluna permissoes.
	EsquemaJSON EsquemaNivelAcesso = "json"
)

// Config reúne toda a configuração da aplicação.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Environment        string
	Port               string
	NivelAcessoEsquema EsquemaNivelAcesso
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	SecretID string
	SSLMode  string
}

// Load carrega a configuração a partir das variáveis de ambiente.
func Load() (*Config, error) {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Environment:        getEnv("APP_ENV", "development"),
			Port:               getEnv("APP_PORT", "5000"),
			NivelAcessoEsquema: EsquemaNivelAcesso(getEnv("NIVEL_ACESSO_SCHEMA", string(EsquemaColunas))),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "sisdineng"),
			SecretID: getEnv("DB_SECRET_ID", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}

	switch cfg.App.NivelAcessoEsquema {
	case EsquemaColunas, EsquemaJSON:
	default:
		return nil, fmt.Errorf("NIVEL_ACESSO_SCHEMA inválido: %q (use %q ou %q)",
			cfg.App.NivelAcessoEsquema, EsquemaColunas, EsquemaJSON)
	}

	return cfg, nil
}

// IsProduction indica se a aplicação roda em produção.
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
